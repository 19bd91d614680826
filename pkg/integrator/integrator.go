package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray.
	// lights may be nil when the scene registers no importance-sampled emitters.
	RayColor(ray core.Ray, world geometry.Shape, lights pdf.Target, sampler core.Sampler) core.Vec3
}
