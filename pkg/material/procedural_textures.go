package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates two color sources on a 3D lattice of cubes
type CheckerTexture struct {
	invScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewCheckerTexture creates a spatial checker with cubes of edge length scale
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTextureFrom(scale, NewSolidColor(even), NewSolidColor(odd))
}

// NewCheckerTextureFrom creates a spatial checker from arbitrary color sources
func NewCheckerTextureFrom(scale float64, even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// Evaluate picks the even or odd source from the parity of the lattice cell
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// noiseTurbulenceDepth is the number of octaves summed by NoiseTexture
const noiseTurbulenceDepth = 4

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture; the lattice is drawn from sampler
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns a gray level from phase-shifted sine bands along Z
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	p := point.Multiply(n.Scale)
	gray := 0.5 * (1 + math.Sin(p.Z+10*n.noise.Turbulence(p, noiseTurbulenceDepth)))
	return core.NewVec3(gray, gray, gray)
}

// NewCheckerboardTexture creates a procedural checkerboard pattern image
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
