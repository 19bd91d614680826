// Package curve evaluates polynomial and parametric curves of any dimension.
package curve

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNoControlPoints is returned when a curve is built without points or coefficients
	ErrNoControlPoints = errors.New("curve has no control points")
	// ErrDimensionMismatch is returned when points of different dimensions are mixed
	ErrDimensionMismatch = errors.New("points have different dimensions")
	// ErrInvalidInterval is returned for parameter intervals with no usable span
	ErrInvalidInterval = errors.New("invalid parameter interval")
)

// Curve is anything that maps a parameter in its interval to a point
type Curve[T constraints.Float] interface {
	Interval() Interval[T]
	Evaluate(parameter T) Point[T]
}

// EvaluatePoints samples count evenly spaced parameters across the curve's
// interval, both ends included
func EvaluatePoints[T constraints.Float](c Curve[T], count int) []Point[T] {
	if count <= 0 {
		return nil
	}

	interval := c.Interval()
	if count == 1 {
		return []Point[T]{c.Evaluate(interval.Min)}
	}

	points := make([]Point[T], count)
	step := (interval.Max - interval.Min) / T(count-1)
	for i := range points {
		points[i] = c.Evaluate(interval.Min + T(i)*step)
	}
	// Land exactly on the end of the interval
	points[count-1] = c.Evaluate(interval.Max)
	return points
}

// checkPoints verifies there is at least one point and all share a dimension
func checkPoints[T constraints.Float](points []Point[T]) error {
	if len(points) == 0 {
		return ErrNoControlPoints
	}
	dim := points[0].Dim()
	if dim == 0 {
		return fmt.Errorf("%w: point 0 is empty", ErrDimensionMismatch)
	}
	for i, p := range points[1:] {
		if p.Dim() != dim {
			return fmt.Errorf("%w: point %d has %d coordinates, expected %d", ErrDimensionMismatch, i+1, p.Dim(), dim)
		}
	}
	return nil
}

// clonePoints deep-copies points so callers cannot mutate a curve
func clonePoints[T constraints.Float](points []Point[T]) []Point[T] {
	out := make([]Point[T], len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}
