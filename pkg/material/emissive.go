package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BackFacePolicy controls what a light emits when seen from behind
type BackFacePolicy int

const (
	// BackFaceDark emits nothing from the back face
	BackFaceDark BackFacePolicy = iota
	// BackFaceEmit emits the same radiance from both faces
	BackFaceEmit
	// BackFaceDebug emits a fixed debug color so flipped lights are easy to spot
	BackFaceDebug
)

// backFaceDebugColor is what BackFaceDebug lights show from behind
var backFaceDebugColor = core.NewVec3(0, 0, 1)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted radiance (can be textured)
	BackFace BackFacePolicy
}

// NewDiffuseLight creates a front-face-only light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a front-face-only light with textured emission
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Lights never scatter.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF is zero: lights never scatter
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the radiance leaving the surface toward the ray origin
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if !hit.FrontFace {
		switch e.BackFace {
		case BackFaceEmit:
		case BackFaceDebug:
			return backFaceDebugColor
		default:
			return core.Vec3{}
		}
	}
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
