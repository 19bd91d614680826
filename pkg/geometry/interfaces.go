package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit fills hit only when it returns true; callers own the record.
type Shape interface {
	Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool
	BoundingBox() core.AABB
}

// lightSampleInterval is the hit window used when evaluating light PDFs
var lightSampleInterval = core.NewInterval(0.001, math.Inf(1))
