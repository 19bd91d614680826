package core

// aabbMinThickness is the smallest extent an axis may have after padding
const aabbMinThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains no points
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box.X = IntervalUnion(box.X, Interval{p.X, p.X})
		box.Y = IntervalUnion(box.Y, Interval{p.Y, p.Y})
		box.Z = IntervalUnion(box.Z, Interval{p.Z, p.Z})
	}
	return box
}

// NewAABBFromBoxes returns the smallest AABB enclosing both boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return a.Union(b)
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// Zero direction components produce infinite slab distances, which
// classify the ray correctly without a special case. An empty box is
// never hit.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	if !aabb.IsValid() {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		ax := aabb.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABB(IntervalUnion(aabb.X, other.X), IntervalUnion(aabb.Y, other.Y), IntervalUnion(aabb.Z, other.Z))
}

// Pad widens any axis thinner than the minimum thickness so flat shapes
// still have a volume the slab test can hit
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < aabbMinThickness {
			return i.Expand(aabbMinThickness)
		}
		return i
	}
	return NewAABB(pad(aabb.X), pad(aabb.Y), pad(aabb.Z))
}

// Shift translates the box by offset
func (aabb AABB) Shift(offset Vec3) AABB {
	return NewAABB(aabb.X.Shift(offset.X), aabb.Y.Shift(offset.Y), aabb.Z.Shift(offset.Z))
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max().Subtract(aabb.Min())
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.X.Min <= aabb.X.Max &&
		aabb.Y.Min <= aabb.Y.Max &&
		aabb.Z.Min <= aabb.Z.Max
}
