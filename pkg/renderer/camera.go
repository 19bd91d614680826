package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidConfig is returned when a camera configuration cannot produce an image
var ErrInvalidConfig = errors.New("invalid camera config")

// CameraConfig contains all camera and sampling parameters
type CameraConfig struct {
	Center          core.Vec3 // Camera position (look-from)
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Up direction (usually (0,1,0))
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width / height ratio
	VFov            float64   // Vertical field of view in degrees
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees; 0 disables depth of field
	FocusDistance   float64   // Distance from Center to the plane of perfect focus
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	Background      core.Vec3 // Radiance for rays that leave the scene
	Seed            int64     // Base seed for per-row samplers
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            90,
		DefocusAngle:    0,
		FocusDistance:   10,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Seed:            42,
	}
}

// Validate reports configurations that cannot produce a usable camera basis or image
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidConfig, c.AspectRatio)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical fov %v must be in (0, 180)", ErrInvalidConfig, c.VFov)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d must be positive", ErrInvalidConfig, c.MaxDepth)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance %v must be positive", ErrInvalidConfig, c.FocusDistance)
	case c.DefocusAngle < 0:
		return fmt.Errorf("%w: defocus angle %v must not be negative", ErrInvalidConfig, c.DefocusAngle)
	}

	forward := c.LookAt.Subtract(c.Center)
	if forward.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide at %v", ErrInvalidConfig, c.Center)
	}
	if c.Up.Cross(forward).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidConfig, c.Up)
	}
	return nil
}

// Camera generates primary rays. All fields are derived once by NewCamera
// and never change, so a Camera can be shared by render workers.
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3
	pixel00     core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors
	defocusU    core.Vec3 // Defocus disk horizontal radius
	defocusV    core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates config and derives the camera frame
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{config: config, center: config.Center}
	c.imageHeight = max(1, int(float64(config.Width)/config.AspectRatio))

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(c.imageHeight)

	c.w = config.Center.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Viewport edges: across the top and down the left side
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Multiply(-viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	upperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = upperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)
	c.defocusU = c.u.Multiply(defocusRadius)
	c.defocusV = c.v.Multiply(defocusRadius)

	return c, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the image height derived from width and aspect ratio
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a jittered ray through pixel (i, j), where j counts rows
// from the top. The origin lies on the defocus disk when depth of field is on.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
}
