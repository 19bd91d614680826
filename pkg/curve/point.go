package curve

import "golang.org/x/exp/constraints"

// Point is a position or vector with any number of coordinates
type Point[T constraints.Float] []T

// NewPoint creates a point from its coordinates
func NewPoint[T constraints.Float](coords ...T) Point[T] {
	return Point[T](coords)
}

// Zero returns the origin in dim dimensions
func Zero[T constraints.Float](dim int) Point[T] {
	return make(Point[T], dim)
}

// Dim returns the number of coordinates
func (p Point[T]) Dim() int {
	return len(p)
}

// Clone returns a copy that shares no storage with p
func (p Point[T]) Clone() Point[T] {
	return append(Point[T](nil), p...)
}

// Add returns p + q. Both points must have the same dimension.
func (p Point[T]) Add(q Point[T]) Point[T] {
	out := make(Point[T], len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Subtract returns p - q
func (p Point[T]) Subtract(q Point[T]) Point[T] {
	out := make(Point[T], len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Multiply returns p scaled by s
func (p Point[T]) Multiply(s T) Point[T] {
	out := make(Point[T], len(p))
	for i := range p {
		out[i] = p[i] * s
	}
	return out
}

// Lerp returns (1-u)*p + u*q
func (p Point[T]) Lerp(q Point[T], u T) Point[T] {
	out := make(Point[T], len(p))
	for i := range p {
		out[i] = (1-u)*p[i] + u*q[i]
	}
	return out
}
