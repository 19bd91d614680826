package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// mockTarget returns fixed values so delegation can be observed
type mockTarget struct {
	value     float64
	direction core.Vec3
	lastFrom  core.Vec3
}

func (m *mockTarget) PDFValue(origin, direction core.Vec3) float64 {
	m.lastFrom = origin
	return m.value
}

func (m *mockTarget) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	m.lastFrom = origin
	return m.direction
}

// integrateOverSphere estimates the integral of p over all directions
func integrateOverSphere(p PDF, n int) float64 {
	sampler := core.NewSeededSampler(42)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += p.Value(core.RandomUnitVector(sampler))
	}
	return sum / float64(n) * 4 * math.Pi
}

func TestCosinePDF(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	p := NewCosinePDF(normal)

	if v := p.Value(core.NewVec3(0, -1, 0)); v != 0 {
		t.Errorf("below-surface value should be 0, got %f", v)
	}
	if v := p.Value(normal.Multiply(3)); math.Abs(v-1/math.Pi) > 1e-12 {
		t.Errorf("value along normal should be 1/pi, got %f", v)
	}

	if integral := integrateOverSphere(p, 200000); math.Abs(integral-1) > 0.02 {
		t.Errorf("cosine PDF should integrate to 1, got %f", integral)
	}

	sampler := core.NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		d := p.Generate(sampler)
		if d.Dot(normal) < -1e-12 {
			t.Fatalf("generated direction %v below surface", d)
		}
		if p.Value(d) < 0 {
			t.Fatalf("negative density for generated direction")
		}
	}
}

func TestSpherePDF(t *testing.T) {
	p := NewSpherePDF()
	if v := p.Value(core.NewVec3(1, 2, 3)); math.Abs(v-1/(4*math.Pi)) > 1e-15 {
		t.Errorf("expected 1/(4pi), got %f", v)
	}
	if integral := integrateOverSphere(p, 1000); math.Abs(integral-1) > 1e-9 {
		t.Errorf("sphere PDF should integrate to 1, got %f", integral)
	}
}

func TestHittablePDF_Delegates(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	target := &mockTarget{value: 0.75, direction: core.NewVec3(0, 0, 1)}
	p := NewHittablePDF(target, origin)

	if v := p.Value(core.NewVec3(0, 1, 0)); v != 0.75 {
		t.Errorf("expected delegated value 0.75, got %f", v)
	}
	if target.lastFrom != origin {
		t.Errorf("expected origin %v, got %v", origin, target.lastFrom)
	}
	if d := p.Generate(core.NewSeededSampler(1)); d != target.direction {
		t.Errorf("expected delegated direction, got %v", d)
	}
}

func TestMixturePDF(t *testing.T) {
	a := NewHittablePDF(&mockTarget{value: 2, direction: core.NewVec3(1, 0, 0)}, core.Vec3{})
	b := NewHittablePDF(&mockTarget{value: 4, direction: core.NewVec3(0, 1, 0)}, core.Vec3{})
	m := NewMixturePDF(a, b)

	if v := m.Value(core.NewVec3(0, 0, 1)); v != 3 {
		t.Errorf("expected mixture value 3, got %f", v)
	}

	sampler := core.NewSeededSampler(42)
	countA := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if m.Generate(sampler).X == 1 {
			countA++
		}
	}
	if frac := float64(countA) / n; math.Abs(frac-0.5) > 0.03 {
		t.Errorf("expected roughly even selection, got %f", frac)
	}
}
