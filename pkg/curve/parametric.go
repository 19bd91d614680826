package curve

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ParametricCurve evaluates one function per coordinate
type ParametricCurve[T constraints.Float] struct {
	functions []func(T) T
	interval  Interval[T]
}

// NewParametricCurve creates a curve whose i-th coordinate is functions[i](u)
func NewParametricCurve[T constraints.Float](interval Interval[T], functions ...func(T) T) (*ParametricCurve[T], error) {
	if len(functions) == 0 {
		return nil, ErrNoControlPoints
	}
	for i, f := range functions {
		if f == nil {
			return nil, fmt.Errorf("%w: coordinate function %d is nil", ErrDimensionMismatch, i)
		}
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, interval.Min, interval.Max)
	}
	return &ParametricCurve[T]{functions: append([]func(T) T(nil), functions...), interval: interval}, nil
}

// Interval returns the parameter interval
func (c *ParametricCurve[T]) Interval() Interval[T] {
	return c.interval
}

// Evaluate returns the point at the clamped parameter
func (c *ParametricCurve[T]) Evaluate(parameter T) Point[T] {
	u := c.interval.Clamp(parameter)
	point := make(Point[T], len(c.functions))
	for i, f := range c.functions {
		point[i] = f(u)
	}
	return point
}

// EvaluatePoints samples count points evenly across the parameter interval
func (c *ParametricCurve[T]) EvaluatePoints(count int) []Point[T] {
	return EvaluatePoints[T](c, count)
}
