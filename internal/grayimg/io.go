// Package grayimg converts image files to and from the flat grayscale
// buffers used by gaussblur.
//
// Decoding accepts PNG, JPEG and GIF from the standard library and BMP, TIFF
// and WebP from golang.org/x/image. Every decoded image is converted to
// 8-bit luma. Encoding always produces PNG.
package grayimg

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("grayimg: empty image")
)

// Load decodes the image file at path and converts it to grayscale.
func Load(path string) (*image.Gray, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("grayimg: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	return img, err
}

// Decode decodes an image from r, auto-detecting the format, and converts it
// to grayscale. It returns the format name reported by the decoder.
func Decode(r io.Reader) (*image.Gray, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("grayimg: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return ToGray(img), format, nil
}

// ToGray converts img to an *image.Gray with bounds starting at (0, 0).
// A *image.Gray that already starts at the origin is returned as is.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(gray, gray.Bounds(), img, b.Min, xdraw.Src)
	return gray
}

// Save writes img to path as a PNG file.
func Save(path string, img *image.Gray) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("grayimg: create file: %w", err)
	}

	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img *image.Gray) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("grayimg: encode PNG: %w", err)
	}
	return nil
}
