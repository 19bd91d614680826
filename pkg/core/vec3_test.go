package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected, 1e-9) {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %f, expected 12", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", n.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero vector should return zero, got %v", zero)
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)
	if got := v.Reflect(n); !vecNear(got, expected, 1e-12) {
		t.Errorf("Reflect: got %v, expected %v", got, expected)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	// Straight-on incidence passes through unchanged regardless of ratio
	straight := NewVec3(0, -1, 0)
	if got := straight.Refract(n, 1.0/1.5); !vecNear(got, straight, 1e-12) {
		t.Errorf("normal incidence: got %v, expected %v", got, straight)
	}

	// Unit ratio leaves any direction unchanged
	oblique := NewVec3(1, -1, 0).Normalize()
	if got := oblique.Refract(n, 1.0); !vecNear(got, oblique, 1e-12) {
		t.Errorf("index-matched: got %v, expected %v", got, oblique)
	}

	// Snell's law: sin(theta_t) = eta * sin(theta_i)
	eta := 1.0 / 1.5
	refracted := oblique.Refract(n, eta)
	sinI := math.Sqrt(1 - math.Pow(oblique.Dot(n), 2))
	sinT := math.Sqrt(1 - math.Pow(refracted.Normalize().Dot(n), 2))
	if math.Abs(sinT-eta*sinI) > 1e-9 {
		t.Errorf("Snell's law violated: sinT=%f, eta*sinI=%f", sinT, eta*sinI)
	}
}

func TestVec3_NearZeroAndFinite(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("expected 1e-3 not to be near zero")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAt(NewVec3(1, 2, 3), NewVec3(0, 0, -2), 0.25)
	if got := ray.At(1.5); !vecNear(got, NewVec3(1, 2, 0), 1e-12) {
		t.Errorf("At: got %v", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("Time: got %f, expected 0.25", ray.Time)
	}
}

func TestONB_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(-1, 0, 0),
		NewVec3(0.3, -0.4, 0.8),
		NewVec3(0.95, 0.1, 0.1),
	}

	for _, n := range normals {
		b := NewONB(n)
		for _, axis := range []Vec3{b.U, b.V, b.W} {
			if math.Abs(axis.Length()-1) > 1e-9 {
				t.Errorf("normal %v: axis %v is not unit length", n, axis)
			}
		}
		if math.Abs(b.U.Dot(b.V)) > 1e-9 || math.Abs(b.U.Dot(b.W)) > 1e-9 || math.Abs(b.V.Dot(b.W)) > 1e-9 {
			t.Errorf("normal %v: basis is not orthogonal", n)
		}
		if !vecNear(b.Transform(NewVec3(0, 0, 1)), n.Normalize(), 1e-9) {
			t.Errorf("normal %v: local +Z does not map to the normal", n)
		}
	}
}
