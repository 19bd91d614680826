package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a wrapped shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Shift(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	if !t.Object.Hit(offsetRay, rayT, hit) {
		return false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return true
}

// BoundingBox returns the shifted bounding box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates a wrapped shape about the Y axis
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object so that it appears rotated by angle degrees about Y
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Rotate all eight corners of the object's box into world space
	box := object.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := box.X.Min + float64(i)*box.X.Size()
				y := box.Y.Min + float64(j)*box.Y.Size()
				z := box.Z.Min + float64(k)*box.Z.Size()
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)
	if !box.IsValid() {
		r.bbox = core.EmptyAABB
	}

	return r
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	if !r.Object.Hit(rotated, rayT, hit) {
		return false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return true
}

// BoundingBox returns the box enclosing the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
