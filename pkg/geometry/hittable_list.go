package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// HittableList is a flat collection of shapes tested one after another
type HittableList struct {
	Objects []Shape
	bbox    core.AABB
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends object and grows the bounding box
func (l *HittableList) Add(object Shape) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	tempRec := material.HitRecord{Sampler: hit.Sampler}
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &tempRec) {
			hitAnything = true
			closestSoFar = tempRec.T
			*hit = tempRec
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue is the equal-weight mixture of the members' densities.
// Members that cannot be sampled contribute zero.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if target, ok := object.(pdf.Target); ok {
			sum += weight * target.PDFValue(origin, direction)
		}
	}
	return sum
}

// Random samples a direction toward a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.Objects)
	if n == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := min(int(sampler.Get1D()*float64(n)), n-1)
	if target, ok := l.Objects[index].(pdf.Target); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
