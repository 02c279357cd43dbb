package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"Unit axis", NewVec3(1, 0, 0)},
		{"Long diagonal", NewVec3(3, -4, 12)},
		{"Tiny vector", NewVec3(1e-150, 2e-150, -3e-150)},
		{"Huge vector", NewVec3(1e150, 1e150, 1e150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.v.Normalize().Length()
			if math.Abs(length-1.0) > 1e-12 {
				t.Errorf("Expected unit length, got %v", length)
			}
		})
	}
}

func TestVec3_NormalizeRandom(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if v.Length() == 0 {
			continue
		}
		if length := v.Normalize().Length(); math.Abs(length-1.0) > 1e-12 {
			t.Fatalf("Normalize(%v) has length %v", v, length)
		}
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing a zero vector")
		}
	}()
	Vec3{}.Normalize()
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x × y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Expected y × x = -z, got %v", got)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := b.Divide(2); got != NewVec3(2, 2.5, 3) {
		t.Errorf("Divide: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared: got %v", got)
	}
}

func TestVec3_ReflectFlipsNormalComponent(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		v := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		n := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64()).Normalize()

		r := v.Reflect(n)
		if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-9 {
			t.Fatalf("Expected reflected·n = -(v·n), got %v vs %v", r.Dot(n), v.Dot(n))
		}
		// Tangential component and length are preserved
		if math.Abs(r.Length()-v.Length()) > 1e-9 {
			t.Fatalf("Reflection changed length: %v -> %v", v.Length(), r.Length())
		}
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)
	v := NewVec3(1, -1, 0).Normalize()

	// Index ratio of 1 is no interface at all
	if got := v.Refract(n, 1.0); got.Subtract(v).Length() > 1e-12 {
		t.Errorf("Expected undeviated ray, got %v", got)
	}

	// Entering a denser medium bends toward the normal (Snell's law)
	ratio := 1.0 / 1.5
	refracted := v.Refract(n, ratio)
	sinIn := math.Abs(v.X)
	sinOut := math.Abs(refracted.Normalize().X)
	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sinOut=%v, expected %v", sinOut, ratio*sinIn)
	}
	if math.Abs(refracted.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit refracted vector, got length %v", refracted.Length())
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a large component to not be near zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))
	if got := ray.At(1.5); got != NewVec3(1, 4, 1) {
		t.Errorf("Expected (1,4,1), got %v", got)
	}
}
