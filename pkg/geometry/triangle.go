package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// The front face is the side V0, V1, V2 wind counterclockwise around.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	Normal     core.Vec3 // Unit normal, direction of (V1-V0) × (V2-V0)
	Area       float64
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		Normal:   n.Normalize(),
		Area:     n.Length() / 2,
		bbox:     core.NewAABBFromBoxes(core.NewAABBFromPoints(v0, v1), core.NewAABBFromPoints(v0, v2)).Pad(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if math.Abs(a) < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	root := f * edge2.Dot(q)
	if !rayT.Contains(root) {
		return false
	}

	hit.T = root
	hit.Point = ray.At(root)
	hit.UV = core.NewVec2(u, v)
	hit.Material = t.Material
	hit.SetFaceNormal(ray, t.Normal)
	return true
}

// BoundingBox returns the padded bounding box of the triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue converts the uniform area density of the triangle to solid angle as seen from origin
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if t.Area == 0 || !t.Hit(core.NewRay(origin, direction), lightSampleInterval, &rec) {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	return distanceSquared / (cosine * t.Area)
}

// Random returns the vector from origin to a uniformly chosen point on the triangle
func (t *Triangle) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	su := math.Sqrt(sample.X)
	b1 := 1 - su
	b2 := sample.Y * su
	p := t.V0.Add(t.V1.Subtract(t.V0).Multiply(b1)).Add(t.V2.Subtract(t.V0).Multiply(b2))
	return p.Subtract(origin)
}
