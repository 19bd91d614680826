package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions that can also be sampled
type PDF interface {
	// Value returns the density for direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to the density
	Generate(sampler core.Sampler) core.Vec3
}

// Target is geometry that can be sampled toward from an outside point.
// Lights implement it so the integrator can aim rays at them.
type Target interface {
	// PDFValue returns the solid-angle density of direction from origin toward the target
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a (non-normalized) direction from origin toward the target
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF is cosine-weighted around a surface normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine PDF around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns max(0, cos(theta))/pi
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosTheta/math.Pi)
}

// Generate returns a cosine-weighted direction in the normal's hemisphere
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Transform(core.RandomCosineDirection(sampler))
}

// SpherePDF is uniform over all directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns 1/(4*pi)
func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniform random unit vector
func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler)
}

// HittablePDF samples directions from an origin toward a target
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a PDF aimed at target as seen from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value delegates to the target
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF blends two PDFs with equal weight
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates an equal-weight mixture of a and b
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{a, b}}
}

// Value returns 0.5*a + 0.5*b
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one component with a fair coin and samples it
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
