package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Shapes       []geometry.Shape       // Objects in the scene
	Lights       *geometry.HittableList // Emitters the integrator samples directly; also present in Shapes
	CameraConfig renderer.CameraConfig
	BVH          *geometry.BVHNode // Acceleration structure built by Preprocess
}

// newScene creates an empty scene with the given camera
func newScene(name string, config renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Shape, 0),
		Lights:       geometry.NewHittableList(),
		CameraConfig: config,
	}
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddQuadLight adds a rectangular area light that faces along u × v
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) *geometry.Quad {
	return s.AddTexturedQuadLight(corner, u, v, material.NewSolidColor(emission))
}

// AddTexturedQuadLight adds a quad light whose emission varies across its surface
func (s *Scene) AddTexturedQuadLight(corner, u, v core.Vec3, emission material.ColorSource) *geometry.Quad {
	quad := geometry.NewQuad(corner, u, v, material.NewTexturedDiffuseLight(emission))
	s.Shapes = append(s.Shapes, quad)
	s.Lights.Add(quad)
	return quad
}

// AddSphereLight adds a spherical light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, material.NewDiffuseLight(emission))
	s.Shapes = append(s.Shapes, sphere)
	s.Lights.Add(sphere)
	return sphere
}

// Preprocess validates the camera and builds the BVH. The split axes are
// drawn from the camera seed, so a scene always builds the same tree.
func (s *Scene) Preprocess() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return err
	}
	s.BVH = geometry.NewBVHNode(s.Shapes, core.NewSeededSampler(s.CameraConfig.Seed))
	return nil
}

// World returns the shape the renderer traces against: the BVH when the
// scene has been preprocessed, otherwise a flat list
func (s *Scene) World() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewHittableList(s.Shapes...)
}

// LightTarget returns the lights for importance sampling, or nil when the
// scene has none
func (s *Scene) LightTarget() pdf.Target {
	if s.Lights == nil || s.Lights.Len() == 0 {
		return nil
	}
	return s.Lights
}

// GetPrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
