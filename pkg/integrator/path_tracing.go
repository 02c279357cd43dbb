package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

const (
	// Offset that keeps scattered rays from re-hitting the surface they left
	shadowAcneEpsilon = 0.001

	// Paths whose throughput drops below this carry no visible light
	minThroughput = 1e-12
)

// PathTracingIntegrator implements unidirectional path tracing under a sky gradient
type PathTracingIntegrator struct {
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color straight down
}

// NewPathTracingIntegrator creates a path tracer with the default white-to-blue sky
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor computes the color for a single ray.
// Bounces are followed in a loop with an accumulated throughput instead of recursion;
// a path that runs out of depth budget contributes black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		if throughput.MaxComponent() < minThroughput {
			return core.Vec3{}
		}
		ray = scatter.Scattered
	}

	return core.Vec3{}
}

// backgroundGradient returns the sky color seen along the ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
