package material

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestLambertian_ScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray to start at hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scattered direction must never be degenerate")
		}
	}
}

// oppositeSampler always produces the direction opposite to +z on the unit sphere
type oppositeSampler struct{}

func (oppositeSampler) Get1D() float64 { return 1.0 }
func (oppositeSampler) Get2D() core.Vec2 {
	// z = 1 - 2*1 = -1
	return core.NewVec2(1.0, 0.0)
}
func (oppositeSampler) Get3D() core.Vec3 { return core.NewVec3(1, 1, 1) }

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	scatter, _ := lambertian.Scatter(ray, hit, oppositeSampler{})
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
