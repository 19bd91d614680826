package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// ErrDimensionMismatch is returned when a pixel buffer does not match the image size
var ErrDimensionMismatch = errors.New("buffer does not match image dimensions")

// intensity is the displayable range of a gamma-corrected channel
var intensity = core.NewInterval(0, 0.999)

// Raytracer renders a scene through a camera into packed pixels
type Raytracer struct {
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(camera *Camera, integrator integrator.Integrator, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		integrator: integrator,
		logger:     logger,
	}
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel and returns the image as row-major 0xFFRRGGBB
// values. lights may be nil. With parallel set, contiguous row chunks are
// rendered by up to threads goroutines (one per CPU when threads <= 0).
// Each row draws from its own sampler seeded from the camera seed, so serial
// and parallel renders of the same scene produce the same pixels.
func (rt *Raytracer) Render(world geometry.Shape, lights pdf.Target, parallel bool, threads int) ([]uint32, RenderStats, error) {
	if rt.camera == nil || rt.integrator == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: raytracer needs a camera and an integrator", ErrInvalidConfig)
	}

	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	buffer := make([]uint32, width*height)

	pool := NewWorkerPool(threads)
	workers := 1
	if parallel {
		workers = pool.GetNumWorkers()
	}
	chunks := SplitRows(height, workers)

	rt.logger.Info("render started",
		"width", width,
		"height", height,
		"samples", rt.camera.config.SamplesPerPixel,
		"depth", rt.camera.config.MaxDepth,
		"workers", workers,
		"forward", rt.camera.GetCameraForward(),
	)
	start := time.Now()

	chunkStats := make([]RenderStats, len(chunks))
	task := func(index int, chunk RowChunk) error {
		chunkStats[index] = rt.renderRows(world, lights, chunk, buffer)
		return nil
	}

	var err error
	if parallel {
		err = pool.Run(chunks, task)
	} else {
		for i, chunk := range chunks {
			if err = task(i, chunk); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats := RenderStats{Width: width, Height: height, Workers: workers, Elapsed: time.Since(start)}
	for _, s := range chunkStats {
		stats.add(s)
	}

	rt.logger.Info("render finished",
		"elapsed", stats.Elapsed,
		"samples", stats.TotalSamples,
		"dropped", stats.DroppedSamples,
	)
	if stats.DroppedSamples > 0 {
		rt.logger.Warn("non-finite samples dropped", "count", stats.DroppedSamples)
	}

	return buffer, stats, nil
}

// renderRows fills the rows of chunk in buffer. Only that slice of the
// buffer is written.
func (rt *Raytracer) renderRows(world geometry.Shape, lights pdf.Target, chunk RowChunk, buffer []uint32) RenderStats {
	width := rt.camera.ImageWidth()
	samples := rt.camera.config.SamplesPerPixel
	var stats RenderStats

	for j := chunk.Start; j < chunk.End; j++ {
		sampler := core.NewSeededSampler(rowSeed(rt.camera.config.Seed, j))
		row := buffer[j*width : (j+1)*width]

		for i := range row {
			var ps PixelStats
			for s := 0; s < samples; s++ {
				ray := rt.camera.GetRay(i, j, sampler)
				ps.AddSample(rt.integrator.RayColor(ray, world, lights, sampler))
			}
			row[i] = PackColor(ps.GetColor())

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
			stats.DroppedSamples += ps.Dropped
		}
	}
	return stats
}

// rowSeed mixes the base seed with the row index
func rowSeed(seed int64, row int) int64 {
	return seed ^ int64(uint64(row+1)*0x9e3779b97f4a7c15)
}

// linearToByte applies gamma 2, clamps to the displayable range and scales to 8 bits
func linearToByte(x float64) uint32 {
	if !(x > 0) {
		return 0
	}
	return uint32(256 * intensity.Clamp(math.Sqrt(x)))
}

// PackColor tone-maps an averaged linear color into 0xFFRRGGBB
func PackColor(c core.Vec3) uint32 {
	return 0xFF000000 | linearToByte(c.X)<<16 | linearToByte(c.Y)<<8 | linearToByte(c.Z)
}

// UnpackColor splits a packed pixel into its 8-bit channels
func UnpackColor(pixel uint32) (r, g, b uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}

// ToImage copies a packed buffer into an RGBA image for encoding
func ToImage(buffer []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(buffer) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrDimensionMismatch, len(buffer), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			r, g, b := UnpackColor(buffer[j*width+i])
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}
