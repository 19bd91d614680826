package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width          int           // Image width in pixels
	Height         int           // Image height in pixels
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	DroppedSamples int           // Samples discarded because they were not finite
	Workers        int           // Goroutines used; 1 for serial renders
	Elapsed        time.Duration // Wall-clock render time
}

// add merges the counters of a partial render into s
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.DroppedSamples += other.DroppedSamples
}

// AverageSamples returns the number of kept samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples-s.DroppedSamples) / float64(s.TotalPixels)
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
	Dropped     int       // Non-finite samples replaced by black
}

// AddSample adds a new color sample to the pixel statistics.
// NaN or infinite samples count toward the total but contribute black.
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	if !color.IsFinite() {
		ps.Dropped++
		return
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean display luminance of a packed buffer
func CalculateAverageLuminance(buffer []uint32) float64 {
	if len(buffer) == 0 {
		return 0
	}

	total := 0.0
	for _, pixel := range buffer {
		r, g, b := UnpackColor(pixel)
		c := core.NewVec3(float64(r)/255, float64(g)/255, float64(b)/255)
		total += c.Luminance()
	}
	return total / float64(len(buffer))
}
