package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene creates a scene demonstrating texture mapping on spheres, quads and boxes
func NewTextureScene(opts Options) *Scene {
	config := renderer.DefaultCameraConfig()
	config.Center = core.NewVec3(0, 2, 10)
	config.LookAt = core.NewVec3(0, 1, 0)
	config.Width = 800
	config.VFov = 50
	config.SamplesPerPixel = 100
	config.MaxDepth = 10
	config.Background = core.NewVec3(0.3, 0.4, 0.6)

	s := newScene("textures", config)

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	fineBrickPattern := material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	)
	spatialChecker := material.NewCheckerTexture(0.25, core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.85, 0.85, 0.85))
	marble := material.NewNoiseTexture(2, proceduralSampler(opts))

	checkerMat := material.NewTexturedLambertian(checkerboard)
	brickMat := material.NewTexturedLambertian(fineBrickPattern)
	imageMat := material.NewTexturedLambertian(imageTexture(opts, checkerboard))

	s.Add(
		// Left to right
		geometry.NewSphere(core.NewVec3(-4.5, 1, 0), 1, imageMat),
		geometry.NewSphere(core.NewVec3(-2, 1, 0), 1, material.NewTexturedLambertian(marble)),
		geometry.NewRotatedBox(core.NewVec3(1.4, 1.4, 1.4), 30, core.NewVec3(-0.2, 0, -0.5), material.NewTexturedLambertian(spatialChecker)),
		geometry.NewQuad(core.NewVec3(2.3, 0, 0.2), core.NewVec3(1.5, 0, -0.3), core.NewVec3(0, 2, 0), checkerMat),
		geometry.NewSphere(core.NewVec3(5, 1, 0), 1, material.NewDielectric(1.5)),
		// Ground
		NewGroundQuad(core.NewVec3(0, 0, 2.5), 20, brickMat),
	)

	s.AddSphereLight(core.NewVec3(0, 8, 5), 2, core.NewVec3(20, 20, 20))
	// Striped backdrop panel facing the camera
	s.AddTexturedQuadLight(core.NewVec3(-3, 3.5, -4), core.NewVec3(6, 0, 0), core.NewVec3(0, 1, 0),
		material.NewCheckerboardTexture(64, 8, 8, core.NewVec3(3, 2.4, 1.2), core.NewVec3(0.2, 0.1, 0.05)))

	return s
}
