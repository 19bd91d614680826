package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the six quads of the axis-aligned box with opposite corners a and b.
// Every face normal points outward.
func NewBox(a, b core.Vec3, material material.Material) *HittableList {
	sides := NewHittableList()

	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material))          // front
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, material)) // right
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, material)) // back
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material))          // left
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), material)) // top
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material))          // bottom

	return sides
}

// NewRotatedBox builds a box with corners at the origin and size, rotates it
// about Y by angle degrees and moves it to offset
func NewRotatedBox(size core.Vec3, angle float64, offset core.Vec3, material material.Material) Shape {
	var box Shape = NewBox(core.Vec3{}, size, material)
	box = NewRotateY(box, angle)
	return NewTranslate(box, offset)
}
