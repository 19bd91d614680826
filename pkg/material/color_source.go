package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource is a texture: a color looked up by surface coordinates
// (image textures) or by hit position (procedural textures)
type ColorSource interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor is the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// ColorFunc adapts a plain function to ColorSource
type ColorFunc func(uv core.Vec2, point core.Vec3) core.Vec3

func (f ColorFunc) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return f(uv, point)
}
