package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FreePathMode selects the logarithm used to sample scattering distances
type FreePathMode int

const (
	// FreePathNatural samples exponential free paths: -ln(U)/density
	FreePathNatural FreePathMode = iota
	// FreePathLog10 uses -log10(U)/density, which thins the medium by ln(10)
	FreePathLog10
)

// exitEpsilon separates the entry and exit boundary searches
const exitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium filling a closed boundary
type ConstantMedium struct {
	Boundary      Shape
	PhaseFunction material.Material
	Mode          FreePathMode
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium is NewConstantMedium with a textured albedo
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit samples a scattering event inside the boundary along the ray.
// Scattering distances are drawn from hit.Sampler, or from the shared
// global source when the caller did not set one.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	rec1 := material.HitRecord{Sampler: hit.Sampler}
	rec2 := material.HitRecord{Sampler: hit.Sampler}

	if !m.Boundary.Hit(ray, core.UniverseInterval, &rec1) {
		return false
	}
	if !m.Boundary.Hit(ray, core.NewInterval(rec1.T+exitEpsilon, math.Inf(1)), &rec2) {
		return false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	sampler := hit.Sampler
	if sampler == nil {
		sampler = core.GlobalSampler{}
	}
	hitDistance := m.negInvDensity * m.logUniform(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return false
	}

	hit.T = rec1.T + hitDistance/rayLength
	hit.Point = ray.At(hit.T)
	hit.Normal = core.NewVec3(1, 0, 0) // arbitrary
	hit.FrontFace = true               // also arbitrary
	hit.UV = core.Vec2{}
	hit.Material = m.PhaseFunction
	return true
}

func (m *ConstantMedium) logUniform(u float64) float64 {
	if m.Mode == FreePathLog10 {
		return math.Log10(u)
	}
	return math.Log(u)
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
