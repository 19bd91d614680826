package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.Center = core.NewVec3(278, 278, -800)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.AspectRatio = 1.0
	config.VFov = 40
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.Background = core.NewVec3(0, 0, 0)
	return config
}

// addCornellWalls adds the five walls of the box
func addCornellWalls(s *Scene) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor - XZ plane at y=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling - XZ plane at y=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall - XY plane at z=boxSize
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
}

// NewCornellScene creates a classic Cornell box scene with quad walls and area lighting
func NewCornellScene() *Scene {
	s := newScene("cornell", cornellCamera())
	addCornellWalls(s)

	// Ceiling light facing down (u × v points to -y)
	s.AddQuadLight(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	s.Add(geometry.NewRotatedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), aluminum))

	// The glass sphere is also sampled so caustics converge faster
	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	s.Add(glassSphere)
	s.Lights.Add(glassSphere)

	return s
}

// NewCornellSmokeScene creates a Cornell box whose two blocks are filled with smoke
func NewCornellSmokeScene() *Scene {
	config := cornellCamera()
	config.SamplesPerPixel = 200
	s := newScene("cornell-smoke", config)
	addCornellWalls(s)

	s.AddQuadLight(
		core.NewVec3(113, 554, 127),
		core.NewVec3(330, 0, 0),
		core.NewVec3(0, 0, 305),
		core.NewVec3(7, 7, 7),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall := geometry.NewRotatedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	short := geometry.NewRotatedBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white)

	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}
