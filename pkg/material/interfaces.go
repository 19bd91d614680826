package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter decides how an incoming ray continues after the hit.
	// Returning false means the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the material's density for the scattered direction.
	// Only meaningful for results that carry a PDF.
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering.
// Exactly one branch is meaningful: a sampling PDF, or an explicit
// ray that bypasses PDF weighting when SkipPDF is set.
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         pdf.PDF   // Direction density for diffuse-like scattering
	SkipPDF     bool      // Set for specular scattering
	SkipPDFRay  core.Ray  // The scattered ray when SkipPDF is set
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.SkipPDF
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always against the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates for texturing
	FrontFace bool      // Whether ray hit the front face

	// Sampler is the random source for shapes that sample during
	// intersection, such as participating media. Set by the caller before
	// Hit and left unchanged by shapes.
	Sampler core.Sampler
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
