package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 and its displacement over the shutter
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromBoxes(box1, box2),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	center := s.Center.At(ray.Time)
	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range
	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	hit.T = root
	hit.Point = ray.At(root)
	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)
	hit.Material = s.Material
	return true
}

// BoundingBox returns the box enclosing the sphere over the whole shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the solid-angle density of sampling direction from origin
// toward the sphere, using the center at time 0
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !s.Hit(core.NewRay(origin, direction), lightSampleInterval, &rec) {
		return 0
	}

	distanceSquared := s.Center.At(0).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction from origin toward a uniformly chosen point of
// the cone the sphere subtends
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.At(0).Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	return uvw.Transform(core.RandomToSphere(s.Radius, distanceSquared, sampler))
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis from X=-1, v from the south pole to the north pole.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
