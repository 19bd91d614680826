package curve

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BezierCurve is a Bezier curve of degree len(points)-1. Parameters are
// mapped from the curve interval onto [0, 1] and clamped.
type BezierCurve[T constraints.Float] struct {
	points   []Point[T]
	interval Interval[T]
}

// NewBezierCurve creates a Bezier curve over [0, 1]
func NewBezierCurve[T constraints.Float](points []Point[T]) (*BezierCurve[T], error) {
	return NewBezierCurveOn(points, UnitInterval[T]())
}

// NewBezierCurveOn creates a Bezier curve over the given parameter interval
func NewBezierCurveOn[T constraints.Float](points []Point[T], interval Interval[T]) (*BezierCurve[T], error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, interval.Min, interval.Max)
	}
	return &BezierCurve[T]{points: clonePoints(points), interval: interval}, nil
}

// Interval returns the parameter interval
func (b *BezierCurve[T]) Interval() Interval[T] {
	return b.interval
}

// Degree returns the polynomial degree
func (b *BezierCurve[T]) Degree() int {
	return len(b.points) - 1
}

// Dim returns the dimension of the control points
func (b *BezierCurve[T]) Dim() int {
	return b.points[0].Dim()
}

// ControlPoints returns a copy of the control points
func (b *BezierCurve[T]) ControlPoints() []Point[T] {
	return clonePoints(b.points)
}

// Evaluate returns the point at parameter using de Casteljau's algorithm
func (b *BezierCurve[T]) Evaluate(parameter T) Point[T] {
	return b.deCasteljau(b.interval.Localize(parameter))
}

func (b *BezierCurve[T]) deCasteljau(u T) Point[T] {
	work := clonePoints(b.points)
	for level := 1; level < len(work); level++ {
		for j := 0; j < len(work)-level; j++ {
			work[j] = work[j].Lerp(work[j+1], u)
		}
	}
	return work[0]
}

// PointOnCurve returns the point at parameter as a Bernstein-weighted sum
// of the control points
func (b *BezierCurve[T]) PointOnCurve(parameter T) Point[T] {
	u := b.interval.Localize(parameter)
	basis := AllBernstein(b.Degree(), u)

	point := Zero[T](b.Dim())
	for i, p := range b.points {
		point = point.Add(p.Multiply(basis[i]))
	}
	return point
}

// Derivative returns the first derivative with respect to the local
// parameter in [0, 1]: n * sum B(i, n-1) * (P[i+1] - P[i])
func (b *BezierCurve[T]) Derivative(parameter T) Point[T] {
	n := b.Degree()
	if n == 0 {
		return Zero[T](b.Dim())
	}

	u := b.interval.Localize(parameter)
	basis := AllBernstein(n-1, u)

	deriv := Zero[T](b.Dim())
	for i, weight := range basis {
		deriv = deriv.Add(b.points[i+1].Subtract(b.points[i]).Multiply(weight))
	}
	return deriv.Multiply(T(n))
}

// EvaluatePoints samples count points evenly across the parameter interval
func (b *BezierCurve[T]) EvaluatePoints(count int) []Point[T] {
	return EvaluatePoints[T](b, count)
}
