package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a binary bounding volume hierarchy over shapes.
// Children are either further nodes or the shapes themselves.
type BVHNode struct {
	Left  Shape
	Right Shape
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects, splitting each level on an
// axis drawn from sampler. The input slice is not modified.
func NewBVHNode(objects []Shape, sampler core.Sampler) *BVHNode {
	// Copy so concurrent builders can share the input slice
	shapesCopy := make([]Shape, len(objects))
	copy(shapesCopy, objects)
	return buildBVH(shapesCopy, sampler)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, sampler core.Sampler) *BVHNode {
	return NewBVHNode(list.Objects, sampler)
}

func buildBVH(objects []Shape, sampler core.Sampler) *BVHNode {
	node := &BVHNode{bbox: core.EmptyAABB}

	axis := min(int(sampler.Get1D()*3), 2)
	less := func(a, b Shape) bool {
		return a.BoundingBox().Axis(axis).Min < b.BoundingBox().Axis(axis).Min
	}

	switch span := len(objects); span {
	case 0:
		// Empty scene: a node that never hits
		return node
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if less(objects[0], objects[1]) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return less(objects[i], objects[j])
		})
		mid := span / 2
		node.Left = buildBVH(objects[:mid], sampler)
		node.Right = buildBVH(objects[mid:], sampler)
	}

	node.bbox = core.NewAABBFromBoxes(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

// Hit tests the node box first, then both children, narrowing the window
// for the right child to the left child's hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(ray, rayT, hit)

	rightT := rayT
	if hitLeft {
		rightT.Max = hit.T
	}
	hitRight := n.Right.Hit(ray, rightT, hit)

	return hitLeft || hitRight
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int     // Interior nodes
	Shapes     int     // Distinct shapes referenced by the leaves
	MaxDepth   int     // Deepest shape reference, root children at depth 1
	AvgDepth   float64 // Mean depth of shape references
}

// Stats walks the hierarchy and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	refs := 0
	n.collectStats(1, &stats, &refs)

	if refs > 0 {
		stats.AvgDepth /= float64(refs)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats, refs *int) {
	stats.TotalNodes++
	if n.Left == nil {
		return
	}

	for i, child := range []Shape{n.Left, n.Right} {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats, refs)
			continue
		}
		*refs++
		stats.AvgDepth += float64(depth)
		stats.MaxDepth = max(stats.MaxDepth, depth)
		// Single-object nodes hold the same shape twice
		if i == 0 || n.Left != n.Right {
			stats.Shapes++
		}
	}
}
