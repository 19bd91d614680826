package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// minPDFValue is the smallest mixture density the estimator divides by
const minPDFValue = 1e-12

// hitInterval excludes self-intersections right at the ray origin
var hitInterval = core.NewInterval(0.001, math.Inf(1))

// PathTracingIntegrator implements recursive unidirectional path tracing
// with optional light importance sampling
type PathTracingIntegrator struct {
	Background core.Vec3 // Radiance returned for rays that escape the scene
	MaxDepth   int       // Maximum number of bounces per camera ray
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background core.Vec3, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor computes the color for a camera ray, starting at MaxDepth
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, lights pdf.Target, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, pt.MaxDepth, world, lights, sampler)
}

// Trace computes the color for a ray with depth bounces remaining
func (pt *PathTracingIntegrator) Trace(ray core.Ray, depth int, world geometry.Shape, lights pdf.Target, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit := material.HitRecord{Sampler: sampler}
	if world == nil || !world.Hit(ray, hitInterval, &hit) {
		return pt.Background
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	colorEmitted := emittedLight(ray, &hit)

	scatter, didScatter := hit.Material.Scatter(ray, &hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	// Specular surfaces continue along a fixed ray and are not emissive
	if scatter.IsSpecular() {
		return scatter.Attenuation.MultiplyVec(
			pt.Trace(scatter.SkipPDFRay, depth-1, world, lights, sampler))
	}

	return colorEmitted.Add(pt.diffuseColor(ray, &hit, scatter, depth, world, lights, sampler))
}

// diffuseColor estimates the scattered radiance for a PDF-driven bounce
func (pt *PathTracingIntegrator) diffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, depth int, world geometry.Shape, lights pdf.Target, sampler core.Sampler) core.Vec3 {
	var samplingPDF pdf.PDF = scatter.PDF
	if lights != nil {
		samplingPDF = pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAt(hit.Point, samplingPDF.Generate(sampler), ray.Time)
	pdfValue := samplingPDF.Value(scattered.Direction)
	if !(pdfValue > minPDFValue) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := pt.Trace(scattered, depth-1, world, lights, sampler)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emitted(ray, hit)
	}
	return core.Vec3{}
}
