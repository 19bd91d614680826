package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var defaultWindow = core.NewInterval(0.001, math.Inf(1))

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var hit material.HitRecord
	if sphere.Hit(ray, defaultWindow, &hit) {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			var hit material.HitRecord
			if !sphere.Hit(ray, defaultWindow, &hit) {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != mat {
				t.Error("hit record should carry the sphere's material")
			}
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Error("normal should face against the ray")
			}
		})
	}
}

func TestSphere_Hit_WindowExcludesEndpoints(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	var hit material.HitRecord
	// Near root (t=1) sits on the window edge, so the far root (t=3) is used
	if !sphere.Hit(ray, core.NewInterval(1, 10), &hit) || math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("expected far root at t=3, got hit=%v t=%f", hit, hit.T)
	}
	if sphere.Hit(ray, core.NewInterval(1, 3), &hit) {
		t.Error("both roots on the window edges should miss")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec3
		u, v float64
	}{
		{"+x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-z", core.NewVec3(0, 0, -1), 0.75, 0.5},
		{"-y", core.NewVec3(0, -1, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.p)
			if math.Abs(uv.X-tt.u) > 1e-9 || math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("got (%f, %f), expected (%f, %f)", uv.X, uv.Y, tt.u, tt.v)
			}
		})
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, nil)

	box := sphere.BoundingBox()
	if box.Y.Min != -0.5 || box.Y.Max != 2.5 {
		t.Errorf("bounding box should cover both ends, got %v", box.Y)
	}

	var hit material.HitRecord
	early := core.NewRayAt(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAt(core.NewVec3(0, 2, 5), core.NewVec3(0, 0, -1), 1)
	if sphere.Hit(early, defaultWindow, &hit) {
		t.Error("at time 0 the sphere is at the origin")
	}
	if !sphere.Hit(late, defaultWindow, &hit) {
		t.Error("at time 1 the sphere is at y=2")
	}
}

func TestSphere_PDFValueMatchesSolidAngle(t *testing.T) {
	radius := 1.0
	sphere := NewSphere(core.NewVec3(0, 0, -5), radius, nil)
	origin := core.Vec3{}

	cosMax := math.Sqrt(1 - radius*radius/25)
	expected := 1 / (2 * math.Pi * (1 - cosMax))

	if v := sphere.PDFValue(origin, core.NewVec3(0, 0, -1)); math.Abs(v-expected) > 1e-9 {
		t.Errorf("toward sphere: got %f, expected %f", v, expected)
	}
	if v := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); v != 0 {
		t.Errorf("away from sphere: got %f, expected 0", v)
	}

	// Every sampled direction must hit the sphere and have the uniform cone density
	sampler := core.NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		dir := sphere.Random(origin, sampler)
		if v := sphere.PDFValue(origin, dir); math.Abs(v-expected) > 1e-6 {
			t.Fatalf("sampled direction %v has density %f, expected %f", dir, v, expected)
		}
	}
}

func TestSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, -2, nil)
	if sphere.Radius != 0 {
		t.Errorf("expected radius clamped to 0, got %f", sphere.Radius)
	}
}
