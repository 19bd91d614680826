package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(opts Options) *Scene {
	config := renderer.DefaultCameraConfig()
	config.Center = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VFov = 20
	config.DefocusAngle = 0.6
	config.FocusDistance = 10
	config.SamplesPerPixel = 50
	config.MaxDepth = 20

	s := newScene("default", config)
	sampler := proceduralSampler(opts)

	// Create materials
	checker := material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewTexturedLambertian(checker)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	glass := material.NewDielectric(1.5)
	bronze := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	brushed := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.3)
	red := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))

	fallback := material.NewCheckerboardTexture(256, 128, 16,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	globe := material.NewTexturedLambertian(imageTexture(opts, fallback))

	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, marble),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, bronze),
		geometry.NewSphere(core.NewVec3(2.5, 0.5, 2.2), 0.5, globe),
		geometry.NewSphere(core.NewVec3(-1.5, 0.35, 2.6), 0.35, brushed),
		// Moves upward during the shutter interval
		geometry.NewMovingSphere(core.NewVec3(1, 0.3, 2.8), core.NewVec3(1, 0.6, 2.8), 0.3, red),
	)

	return s
}
