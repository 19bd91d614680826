package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingTextureColor is returned by textures with no pixel data
var missingTextureColor = core.NewVec3(1, 0, 1)

// unitInterval clamps texture coordinates
var unitInterval = core.NewInterval(0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y = 0 is the top row
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs outside [0,1] are clamped. A texture without pixels evaluates to magenta.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	// V=0 is bottom, V=1 is top; image rows start at the top
	u := unitInterval.Clamp(uv.X)
	v := 1.0 - unitInterval.Clamp(uv.Y)

	x := int(u * float64(t.Width-1))
	y := int(v * float64(t.Height-1))

	return t.Pixels[y*t.Width+x]
}
