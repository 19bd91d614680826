package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := &HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0), T: 1.0, FrontFace: true}

	if _, scattered := light.Scatter(ray, hit, core.NewSeededSampler(42)); scattered {
		t.Error("DiffuseLight should not scatter rays")
	}
	if light.ScatteringPDF(ray, hit, ray) != 0 {
		t.Error("DiffuseLight scattering PDF should be 0")
	}
}

func TestDiffuseLight_BackFacePolicy(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	front := &HitRecord{FrontFace: true}
	back := &HitRecord{FrontFace: false}

	tests := []struct {
		name     string
		policy   BackFacePolicy
		expected core.Vec3
	}{
		{"dark", BackFaceDark, core.Vec3{}},
		{"emit", BackFaceEmit, emission},
		{"debug", BackFaceDebug, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewDiffuseLight(emission)
			light.BackFace = tt.policy

			if got := light.Emitted(ray, front); got != emission {
				t.Errorf("front face: got %v, expected %v", got, emission)
			}
			if got := light.Emitted(ray, back); got != tt.expected {
				t.Errorf("back face: got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDiffuseLight_Textured(t *testing.T) {
	tex := NewCheckerTexture(1, core.NewVec3(2, 2, 2), core.NewVec3(0, 0, 0))
	light := NewTexturedDiffuseLight(tex)
	hit := &HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), FrontFace: true}
	if got := light.Emitted(core.Ray{}, hit); got != core.NewVec3(2, 2, 2) {
		t.Errorf("got %v", got)
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	sampler := core.NewSeededSampler(42)
	hit := &HitRecord{Normal: core.NewVec3(1, 0, 0), FrontFace: true}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	scatter, ok := iso.Scatter(ray, hit, sampler)
	if !ok || scatter.IsSpecular() {
		t.Fatal("isotropic should scatter with a PDF")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("attenuation: got %v, expected %v", scatter.Attenuation, albedo)
	}

	// Directions cover both hemispheres
	up, down := 0, 0
	for i := 0; i < 1000; i++ {
		if scatter.PDF.Generate(sampler).X > 0 {
			up++
		} else {
			down++
		}
	}
	if up < 400 || down < 400 {
		t.Errorf("expected uniform directions, got %d/%d", up, down)
	}
}
