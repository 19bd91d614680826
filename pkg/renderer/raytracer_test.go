package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

const (
	opaqueWhite = 0xFFFFFFFF
	opaqueBlack = 0xFF000000
)

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (c constantIntegrator) RayColor(ray core.Ray, world geometry.Shape, lights pdf.Target, sampler core.Sampler) core.Vec3 {
	return c.color
}

// sphereScene sets up a unit Lambertian sphere at the origin seen from (0,0,3)
func sphereScene(t *testing.T, width, samples, depth int) (*Raytracer, geometry.Shape) {
	t.Helper()

	config := DefaultCameraConfig()
	config.Center = core.NewVec3(0, 0, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.Width = width
	config.AspectRatio = 1
	config.SamplesPerPixel = samples
	config.MaxDepth = depth
	config.Background = core.NewVec3(1, 1, 1)

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	pt := integrator.NewPathTracingIntegrator(config.Background, config.MaxDepth)
	return NewRaytracer(camera, pt, nil), sphere
}

func TestRender_SingleSphereScenario(t *testing.T) {
	const width = 21
	rt, sphere := sphereScene(t, width, 1, 1)

	for _, parallel := range []bool{false, true} {
		buffer, stats, err := rt.Render(sphere, nil, parallel, 4)
		if err != nil {
			t.Fatalf("Render(parallel=%v): %v", parallel, err)
		}
		if len(buffer) != width*width {
			t.Fatalf("buffer length %d, expected %d", len(buffer), width*width)
		}
		if stats.TotalPixels != width*width || stats.TotalSamples != width*width {
			t.Errorf("unexpected stats %+v", stats)
		}

		corners := []int{0, width - 1, width * (width - 1), width*width - 1}
		for _, idx := range corners {
			if buffer[idx] != opaqueWhite {
				t.Errorf("parallel=%v: background pixel %d = %#08x, expected %#08x", parallel, idx, buffer[idx], uint32(opaqueWhite))
			}
		}

		center := (width/2)*width + width/2
		if buffer[center] != opaqueBlack {
			t.Errorf("parallel=%v: center pixel = %#08x, expected %#08x", parallel, buffer[center], uint32(opaqueBlack))
		}

		for idx, pixel := range buffer {
			if pixel != opaqueWhite && pixel != opaqueBlack {
				t.Fatalf("pixel %d = %#08x is neither background nor black", idx, pixel)
			}
		}
	}
}

func TestRender_SerialMatchesParallel(t *testing.T) {
	rt, sphere := sphereScene(t, 16, 4, 4)

	serial, _, err := rt.Render(sphere, nil, false, 0)
	if err != nil {
		t.Fatalf("serial render: %v", err)
	}

	for _, threads := range []int{1, 3, 16, 64} {
		parallel, stats, err := rt.Render(sphere, nil, true, threads)
		if err != nil {
			t.Fatalf("parallel render with %d threads: %v", threads, err)
		}
		if stats.Workers != threads {
			t.Errorf("expected %d workers, got %d", threads, stats.Workers)
		}
		for i := range serial {
			if serial[i] != parallel[i] {
				t.Fatalf("threads=%d: pixel %d differs (%#08x vs %#08x)", threads, i, serial[i], parallel[i])
			}
		}
	}
}

// smokeScene renders a dense medium box over a floor lit by a quad light
func smokeScene(t *testing.T) (*Raytracer, geometry.Shape, pdf.Target) {
	t.Helper()

	config := DefaultCameraConfig()
	config.Center = core.NewVec3(0, 1, 4)
	config.LookAt = core.NewVec3(0, 0.5, 0)
	config.Width = 16
	config.AspectRatio = 1
	config.SamplesPerPixel = 4
	config.MaxDepth = 6
	config.Seed = 5

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	light := geometry.NewQuad(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	smoke := geometry.NewConstantMedium(
		geometry.NewRotatedBox(core.NewVec3(1.5, 1.5, 1.5), 30, core.NewVec3(-0.9, 0, -0.5), nil),
		0.8, core.NewVec3(0.6, 0.6, 0.6))
	floor := geometry.NewQuad(core.NewVec3(-5, 0, -5), core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	world := geometry.NewBVHNode([]geometry.Shape{light, smoke, floor}, core.NewSeededSampler(config.Seed))
	pt := integrator.NewPathTracingIntegrator(config.Background, config.MaxDepth)
	return NewRaytracer(camera, pt, nil), world, geometry.NewHittableList(light)
}

func TestRender_ParticipatingMediumIsDeterministic(t *testing.T) {
	rt, world, lights := smokeScene(t)

	first, _, err := rt.Render(world, lights, false, 0)
	if err != nil {
		t.Fatalf("serial render: %v", err)
	}
	second, _, err := rt.Render(world, lights, false, 0)
	if err != nil {
		t.Fatalf("second serial render: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("serial renders differ at pixel %d (%#08x vs %#08x)", i, first[i], second[i])
		}
	}

	for _, threads := range []int{2, 5, 16} {
		parallel, _, err := rt.Render(world, lights, true, threads)
		if err != nil {
			t.Fatalf("parallel render with %d threads: %v", threads, err)
		}
		for i := range first {
			if first[i] != parallel[i] {
				t.Fatalf("threads=%d: pixel %d differs (%#08x vs %#08x)", threads, i, first[i], parallel[i])
			}
		}
	}

	// The center of the image looks into the smoke, not at the sky
	center := (16/2)*16 + 16/2
	if first[center] == PackColor(rt.Camera().Config().Background) {
		t.Error("center pixel should be shaded by the medium")
	}
}

func TestRender_DropsNonFiniteSamples(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 4
	config.AspectRatio = 2
	config.SamplesPerPixel = 3
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	rt := NewRaytracer(camera, constantIntegrator{color: core.NewVec3(math.NaN(), 1, 1)}, nil)
	buffer, stats, err := rt.Render(nil, nil, true, 2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if stats.DroppedSamples != stats.TotalSamples || stats.TotalSamples != 8*3 {
		t.Errorf("expected every sample dropped, got %+v", stats)
	}
	for _, pixel := range buffer {
		if pixel != opaqueBlack {
			t.Fatalf("dropped samples should render black, got %#08x", pixel)
		}
	}
}

func TestRender_RequiresCameraAndIntegrator(t *testing.T) {
	rt := NewRaytracer(nil, constantIntegrator{}, nil)
	if _, _, err := rt.Render(nil, nil, false, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPackColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected uint32
	}{
		{"black", core.NewVec3(0, 0, 0), 0xFF000000},
		{"white clamps to 255", core.NewVec3(1, 1, 1), 0xFFFFFFFF},
		{"overexposed clamps", core.NewVec3(50, 2, 1.5), 0xFFFFFFFF},
		{"negative is black", core.NewVec3(-1, 0, 0), 0xFF000000},
		{"NaN is black", core.NewVec3(math.NaN(), 0, 0), 0xFF000000},
		{"gamma 2", core.NewVec3(0.25, 0, 0), 0xFF800000}, // sqrt(0.25)*256 = 128
		{"channel order", core.NewVec3(1, 0.25, 0), 0xFFFF8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.color); got != tt.expected {
				t.Errorf("PackColor(%v) = %#08x, expected %#08x", tt.color, got, tt.expected)
			}
		})
	}

	r, g, b := UnpackColor(0xFF123456)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("UnpackColor: got %x %x %x", r, g, b)
	}
}

func TestToImage(t *testing.T) {
	buffer := []uint32{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFFFF, 0xFF000000, 0xFF808080}
	img, err := ToImage(buffer, 3, 2)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	if c := img.RGBAAt(1, 0); c.R != 0 || c.G != 255 || c.B != 0 || c.A != 255 {
		t.Errorf("pixel (1,0) = %v, expected green", c)
	}
	if c := img.RGBAAt(2, 1); c.R != 0x80 || c.G != 0x80 || c.B != 0x80 {
		t.Errorf("pixel (2,1) = %v, expected gray", c)
	}

	if _, err := ToImage(buffer, 4, 2); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, n int
		sizes     []int
	}{
		{10, 3, []int{4, 3, 3}},
		{4, 8, []int{1, 1, 1, 1}},
		{5, 0, []int{5}},
		{0, 4, nil},
	}

	for _, tt := range tests {
		chunks := SplitRows(tt.height, tt.n)
		if len(chunks) != len(tt.sizes) {
			t.Fatalf("SplitRows(%d, %d): %d chunks, expected %d", tt.height, tt.n, len(chunks), len(tt.sizes))
		}
		next := 0
		for i, c := range chunks {
			if c.Start != next || c.End-c.Start != tt.sizes[i] {
				t.Errorf("SplitRows(%d, %d): chunk %d = %+v", tt.height, tt.n, i, c)
			}
			next = c.End
		}
	}
}

func TestWorkerPool_RunsEveryChunkAndReportsErrors(t *testing.T) {
	pool := NewWorkerPool(2)
	chunks := SplitRows(9, 9)
	seen := make([]bool, len(chunks))

	err := pool.Run(chunks, func(index int, chunk RowChunk) error {
		seen[index] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("chunk %d was not run", i)
		}
	}

	failure := errors.New("boom")
	err = pool.Run(chunks, func(index int, chunk RowChunk) error {
		if index == 4 {
			return failure
		}
		return nil
	})
	if !errors.Is(err, failure) {
		t.Errorf("expected task error, got %v", err)
	}

	if NewWorkerPool(0).GetNumWorkers() < 1 {
		t.Error("default pool should have at least one worker")
	}
}
