package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the command line settings for a single render
type options struct {
	Scene       string
	Width       int // 0 keeps the scene's width
	Samples     int // 0 keeps the scene's samples per pixel
	MaxDepth    int // 0 keeps the scene's max depth
	Threads     int // 0 uses all CPUs
	Serial      bool
	Seed        int64
	Output      string // empty writes to output/<scene>/render_<timestamp>.png
	TexturePath string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.Scene, "scene", "default", "Scene to render (see -help)")
	flag.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.MaxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&opts.Threads, "threads", 0, "Number of render workers (0 = all CPUs)")
	flag.BoolVar(&opts.Serial, "serial", false, "Render on a single goroutine")
	flag.Int64Var(&opts.Seed, "seed", 42, "Random seed")
	flag.StringVar(&opts.Output, "out", "", "Output PNG path")
	flag.StringVar(&opts.TexturePath, "texture", "", "Image (PNG, JPEG, TIFF, BMP, WebP) for textured spheres")
	help := flag.Bool("help", false, "Show help information")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	filename, err := run(opts, logger)
	if err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png unless -out is set")
}

// createScene builds the named scene with command line overrides applied
func createScene(opts options, logger *slog.Logger) (*scene.Scene, error) {
	if opts.Width < 0 || opts.Samples < 0 || opts.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative width, samples or depth", renderer.ErrInvalidConfig)
	}

	sceneOpts := scene.Options{Seed: opts.Seed, TexturePath: opts.TexturePath}
	if opts.TexturePath != "" {
		loader, err := loaders.NewImageLoader(loaders.DefaultImageCacheSize, logger)
		if err != nil {
			return nil, err
		}
		sceneOpts.Loader = loader
	}

	s, err := scene.Create(opts.Scene, sceneOpts)
	if err != nil {
		return nil, err
	}

	if opts.Width > 0 {
		s.CameraConfig.Width = opts.Width
	}
	if opts.Samples > 0 {
		s.CameraConfig.SamplesPerPixel = opts.Samples
	}
	if opts.MaxDepth > 0 {
		s.CameraConfig.MaxDepth = opts.MaxDepth
	}

	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("preprocess %s: %w", opts.Scene, err)
	}
	return s, nil
}

// run renders the configured scene and returns the written PNG path
func run(opts options, logger *slog.Logger) (string, error) {
	s, err := createScene(opts, logger)
	if err != nil {
		return "", err
	}

	stats := s.BVH.Stats()
	logger.Info("scene ready",
		"scene", s.Name,
		"primitives", s.GetPrimitiveCount(),
		"bvh_nodes", stats.TotalNodes,
		"bvh_max_depth", stats.MaxDepth,
		"bvh_avg_depth", stats.AvgDepth)

	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return "", err
	}
	config := s.CameraConfig
	rt := renderer.NewRaytracer(camera, integrator.NewPathTracingIntegrator(config.Background, config.MaxDepth), logger)

	buffer, renderStats, err := rt.Render(s.World(), s.LightTarget(), !opts.Serial, opts.Threads)
	if err != nil {
		return "", err
	}
	logger.Info("image statistics",
		"average_luminance", renderer.CalculateAverageLuminance(buffer),
		"samples_per_pixel", renderStats.AverageSamples())

	img, err := renderer.ToImage(buffer, camera.ImageWidth(), camera.ImageHeight())
	if err != nil {
		return "", err
	}

	filename := opts.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", s.Name, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		return "", errors.Join(fmt.Errorf("saving PNG: %w", err), file.Close())
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return filename, nil
}
