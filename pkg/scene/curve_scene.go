package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/curve"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// pathSpheres is the number of spheres placed along each curve
const pathSpheres = 24

// ribbonSegments is the number of quads, two triangles each, in a ribbon
const ribbonSegments = 32

// curvePaths returns the two paths the curve scene follows: a cubic Bezier
// arch across the floor and a helix rising around it
func curvePaths() (*curve.BezierCurve[float64], *curve.ParametricCurve[float64]) {
	arch, err := curve.NewBezierCurve([]curve.Point[float64]{
		curve.NewPoint(-4.0, 0.3, 1.0),
		curve.NewPoint(-2.0, 3.5, -2.0),
		curve.NewPoint(2.0, 3.5, -2.0),
		curve.NewPoint(4.0, 0.3, 1.0),
	})
	if err != nil {
		panic(err) // fixed control points
	}

	helix, err := curve.NewParametricCurve(curve.NewInterval(0.0, 4*math.Pi),
		func(u float64) float64 { return 1.5 * math.Cos(u) },
		func(u float64) float64 { return 0.25 + u*0.2 },
		func(u float64) float64 { return -0.5 + 1.5*math.Sin(u) },
	)
	if err != nil {
		panic(err)
	}
	return arch, helix
}

// toVec3 converts a 3D curve point to a vector
func toVec3(p curve.Point[float64]) core.Vec3 {
	return core.NewVec3(p[0], p[1], p[2])
}

// ribbon triangulates a strip that follows c, offset from the curve by
// offset and extending width further
func ribbon(c curve.Curve[float64], offset, width core.Vec3, mat material.Material) []geometry.Shape {
	points := curve.EvaluatePoints(c, ribbonSegments+1)
	shapes := make([]geometry.Shape, 0, 2*ribbonSegments)
	for i := 0; i < ribbonSegments; i++ {
		a := toVec3(points[i]).Add(offset)
		b := toVec3(points[i+1]).Add(offset)
		shapes = append(shapes,
			geometry.NewTriangle(a, b, b.Add(width), mat),
			geometry.NewTriangle(a, b.Add(width), a.Add(width), mat),
		)
	}
	return shapes
}

// NewCurveScene creates a scene with spheres strung along curves
func NewCurveScene() *Scene {
	config := renderer.DefaultCameraConfig()
	config.Center = core.NewVec3(0, 3, 11)
	config.LookAt = core.NewVec3(0, 1.2, 0)
	config.VFov = 45
	config.SamplesPerPixel = 64
	config.MaxDepth = 20
	config.Background = core.NewVec3(0.05, 0.05, 0.08)

	s := newScene("curves", config)
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 60, material.NewLambertian(core.NewVec3(0.45, 0.45, 0.45))))
	s.AddSphereLight(core.NewVec3(-3, 9, 6), 2, core.NewVec3(12, 12, 12))

	arch, helix := curvePaths()

	for i, p := range arch.EvaluatePoints(pathSpheres) {
		hue := 360 * float64(i) / pathSpheres
		albedo := oklchToRGB(0.7, 0.18, hue)
		s.Add(geometry.NewSphere(toVec3(p), 0.22, material.NewLambertian(albedo)))
	}

	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.15)
	for _, p := range helix.EvaluatePoints(pathSpheres) {
		s.Add(geometry.NewSphere(toVec3(p), 0.15, gold))
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, -0.5), 0.8, material.NewDielectric(1.5)))

	// Ribbon shades from warm at the floor to cool at the top of the arch
	shade := material.ColorFunc(func(uv core.Vec2, point core.Vec3) core.Vec3 {
		t := core.NewInterval(0, 1).Clamp(point.Y / 3.5)
		return core.NewVec3(0.85, 0.55, 0.3).Multiply(1 - t).Add(core.NewVec3(0.3, 0.5, 0.85).Multiply(t))
	})
	s.Add(ribbon(arch, core.NewVec3(0, 0, -0.3), core.NewVec3(0, 0, -0.6), material.NewTexturedLambertian(shade))...)

	return s
}
