package curve

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Interval is the parameter range [Min, Max] a curve is defined over
type Interval[T constraints.Float] struct {
	Min, Max T
}

// NewInterval creates a parameter interval
func NewInterval[T constraints.Float](min, max T) Interval[T] {
	return Interval[T]{Min: min, Max: max}
}

// UnitInterval returns [0, 1]
func UnitInterval[T constraints.Float]() Interval[T] {
	return Interval[T]{Min: 0, Max: 1}
}

// IsValid reports whether the interval has a positive, finite span
func (i Interval[T]) IsValid() bool {
	span := float64(i.Max - i.Min)
	return span > 0 && !math.IsInf(span, 0)
}

// Clamp limits value to the interval
func (i Interval[T]) Clamp(value T) T {
	return max(i.Min, min(i.Max, value))
}

// Localize clamps value and maps it to [0, 1]. Invalid intervals map everything to 0.
func (i Interval[T]) Localize(value T) T {
	if !i.IsValid() {
		return 0
	}
	return (i.Clamp(value) - i.Min) / (i.Max - i.Min)
}
