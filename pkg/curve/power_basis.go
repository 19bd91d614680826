package curve

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// PowerBasisCurve is the polynomial C(u) = sum a[i] * u^i. The parameter is
// clamped to the interval but not rescaled.
type PowerBasisCurve[T constraints.Float] struct {
	coefficients []Point[T]
	interval     Interval[T]
}

// NewPowerBasisCurve creates a power basis curve over [0, 1]
func NewPowerBasisCurve[T constraints.Float](coefficients []Point[T]) (*PowerBasisCurve[T], error) {
	return NewPowerBasisCurveOn(coefficients, UnitInterval[T]())
}

// NewPowerBasisCurveOn creates a power basis curve over the given interval
func NewPowerBasisCurveOn[T constraints.Float](coefficients []Point[T], interval Interval[T]) (*PowerBasisCurve[T], error) {
	if err := checkPoints(coefficients); err != nil {
		return nil, err
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, interval.Min, interval.Max)
	}
	return &PowerBasisCurve[T]{coefficients: clonePoints(coefficients), interval: interval}, nil
}

// Interval returns the parameter interval
func (c *PowerBasisCurve[T]) Interval() Interval[T] {
	return c.interval
}

// Degree returns the polynomial degree
func (c *PowerBasisCurve[T]) Degree() int {
	return len(c.coefficients) - 1
}

// Evaluate returns the point at parameter using Horner's rule
func (c *PowerBasisCurve[T]) Evaluate(parameter T) Point[T] {
	u := c.interval.Clamp(parameter)

	n := c.Degree()
	point := c.coefficients[n].Clone()
	for i := n - 1; i >= 0; i-- {
		point = point.Multiply(u).Add(c.coefficients[i])
	}
	return point
}

// EvaluatePoints samples count points evenly across the parameter interval
func (c *PowerBasisCurve[T]) EvaluatePoints(count int) []Point[T] {
	return EvaluatePoints[T](c, count)
}
