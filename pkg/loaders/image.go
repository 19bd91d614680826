package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"

	"github.com/echoflaresat/tiff"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/mmap"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnsupportedImage is returned when no registered decoder accepts a file
var ErrUnsupportedImage = errors.New("unsupported image format")

// DefaultImageCacheSize is the number of decoded images kept by the shared default loader
const DefaultImageCacheSize = 32

// tiffMagic holds the two byte-order headers a TIFF file can start with
var tiffMagic = [][]byte{[]byte("II*\x00"), []byte("MM\x00*")}

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top
}

// ImageLoader decodes image files into linear color arrays and caches the
// results by path. It is safe for concurrent use.
type ImageLoader struct {
	cache  *lru.Cache // path -> *ImageData
	logger core.Logger
}

// NewImageLoader creates a loader keeping up to cacheSize decoded images
func NewImageLoader(cacheSize int, logger core.Logger) (*ImageLoader, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &ImageLoader{cache: cache, logger: logger}, nil
}

var defaultLoader, _ = NewImageLoader(DefaultImageCacheSize, core.DefaultLogger())

// LoadImageTexture loads an image texture through the shared default loader
func LoadImageTexture(filename string) *material.ImageTexture {
	return defaultLoader.LoadTexture(filename)
}

// Load returns the decoded image at filename, decoding it on first use
func (l *ImageLoader) Load(filename string) (*ImageData, error) {
	if cached, ok := l.cache.Get(filename); ok {
		return cached.(*ImageData), nil
	}

	data, err := l.decodeFile(filename)
	if err != nil {
		return nil, err
	}

	l.cache.Add(filename, data)
	return data, nil
}

// LoadTexture wraps Load for texturing. A file that cannot be loaded yields
// an empty texture, which renders as magenta, and a warning.
func (l *ImageLoader) LoadTexture(filename string) *material.ImageTexture {
	data, err := l.Load(filename)
	if err != nil {
		l.logger.Warn("failed to load image texture", "path", filename, "error", err)
		return material.NewImageTexture(0, 0, nil)
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels)
}

func (l *ImageLoader) decodeFile(filename string) (*ImageData, error) {
	reader, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer reader.Close()

	size := int64(reader.Len())

	img, err := tiff.Decode(io.NewSectionReader(reader, 0, size))
	if err != nil {
		if hasTIFFHeader(reader) {
			l.logger.Warn("failed to decode TIFF", "path", filename, "error", err)
		}

		// fallback to image codecs
		var format string
		img, format, err = image.Decode(io.NewSectionReader(reader, 0, size))
		if err != nil {
			if errors.Is(err, image.ErrFormat) {
				return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedImage)
			}
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		l.logger.Debug("decoded image", "path", filename, "format", format)
	}

	return imageToData(img), nil
}

func hasTIFFHeader(r io.ReaderAt) bool {
	header := make([]byte, 4)
	if _, err := r.ReadAt(header, 0); err != nil {
		return false
	}
	for _, magic := range tiffMagic {
		if bytes.Equal(header, magic) {
			return true
		}
	}
	return false
}

// imageToData converts any decoded image to a row-major [0,1] color array
func imageToData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
