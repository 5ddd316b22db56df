// Package imaging decodes image files for insertion into a document.
//
// Decode reads any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP),
// downsamples it by an integer factor so it fits a maximum width and
// summarises it as a swatch colour a text terminal can draw.
package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"  // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/dshills/richeditor/internal/engine/block"
)

// ErrEmptyImage indicates an image with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Picture is the handle stored in block.ImageRef.Handle.
type Picture struct {
	// Path is the file the picture was read from.
	Path string
	// Format is the registered format name, e.g. "png".
	Format string
	// Image is the downsampled bitmap.
	Image image.Image
	// Sample is the downsampling factor applied to both axes.
	Sample int
	// Swatch is the average colour of the picture.
	Swatch colorful.Color
}

// Label returns black or white, whichever reads better on the swatch.
func (p *Picture) Label() colorful.Color {
	l, _, _ := p.Swatch.Lab()
	if l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// SampleSize returns the integer downsampling factor for an image of the
// given width. Images no wider than maxWidth, or any image when maxWidth
// is not positive, are not downsampled.
func SampleSize(width, maxWidth int) int {
	if maxWidth <= 0 || width <= maxWidth {
		return 1
	}
	return width/maxWidth + 1
}

// Decode reads the image at path. The returned ref carries the native
// dimensions; its Handle is a *Picture holding the downsampled bitmap.
func Decode(path string, maxWidth int) (block.ImageRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return block.ImageRef{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return block.ImageRef{}, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return block.ImageRef{}, fmt.Errorf("decode %s: %w", path, ErrEmptyImage)
	}

	sample := SampleSize(bounds.Dx(), maxWidth)
	scaled := src
	if sample > 1 {
		w := max(1, bounds.Dx()/sample)
		h := max(1, bounds.Dy()/sample)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		scaled = dst
	}

	pic := &Picture{
		Path:   path,
		Format: format,
		Image:  scaled,
		Sample: sample,
		Swatch: Average(scaled),
	}
	return block.ImageRef{Handle: pic, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// Average returns the mean colour of img, ignoring alpha.
func Average(img image.Image) colorful.Color {
	b := img.Bounds()
	n := float64(b.Dx() * b.Dy())
	if n == 0 {
		return colorful.Color{}
	}

	var r, g, bl float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r += c.R
			g += c.G
			bl += c.B
		}
	}
	return colorful.Color{R: r / n, G: g / n, B: bl / n}.Clamped()
}
