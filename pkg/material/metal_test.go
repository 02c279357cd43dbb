package material

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction

	tolerance := 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.7, 0.6, 0.5), 1.0)
	sampler := core.NewSeededSampler(5)

	// Grazing ray: fuzz will regularly push the reflection below the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.05, 0), core.NewVec3(1, -0.05, 0))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			absorbed++
			continue
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v dives below the surface", scatter.Scattered.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}
