package main

import (
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError error
	}{
		// Built-in scenes
		{"default scene", "default", nil},
		{"cornell scene", "cornell", nil},
		{"cornell-smoke scene", "cornell-smoke", nil},
		{"spheregrid scene", "spheregrid", nil},
		{"textures scene", "textures", nil},
		{"curves scene", "curves", nil},

		// Invalid scenes
		{"unknown scene", "nonexistent", scene.ErrUnknownScene},
		{"empty scene name", "", scene.ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(options{Scene: tt.sceneType, Seed: 42}, discardLogger())

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("Expected %v for scene type '%s', got %v", tt.expectError, tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", s.CameraConfig.Width)
			}
			if s.BVH == nil {
				t.Error("Scene should be preprocessed")
			}
		})
	}
}

func TestCreateSceneOverrides(t *testing.T) {
	s, err := createScene(options{Scene: "cornell", Width: 33, Samples: 3, MaxDepth: 5, Seed: 9}, discardLogger())
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}
	config := s.CameraConfig
	if config.Width != 33 || config.SamplesPerPixel != 3 || config.MaxDepth != 5 || config.Seed != 9 {
		t.Errorf("overrides not applied: %+v", config)
	}

	// Zero keeps the scene's own settings
	defaults, err := createScene(options{Scene: "cornell"}, discardLogger())
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}
	if defaults.CameraConfig.SamplesPerPixel != scene.NewCornellScene().CameraConfig.SamplesPerPixel {
		t.Error("zero samples should keep the scene default")
	}

	_, err = createScene(options{Scene: "cornell", Samples: -1}, discardLogger())
	if !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative samples, got %v", err)
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "render.png")
	opts := options{Scene: "cornell", Width: 12, Samples: 1, MaxDepth: 3, Threads: 2, Seed: 1, Output: out}

	filename, err := run(opts, discardLogger())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if filename != out {
		t.Errorf("expected output %s, got %s", out, filename)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 12 || bounds.Dy() != 12 {
		t.Errorf("expected 12x12 image, got %v", bounds)
	}
}
