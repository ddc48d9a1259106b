package grayimg

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when a buffer does not describe a
// width x height image.
var ErrInvalidDimensions = errors.New("grayimg: invalid dimensions")

// Pixels returns the luma samples of img as a flat row-major buffer with
// stride equal to the width, together with that width.
// The buffer is a copy; img is not retained.
func Pixels(img *image.Gray) ([]byte, int) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	out := make([]byte, width*height)
	for y := range height {
		start := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out[y*width:(y+1)*width], img.Pix[start:start+width])
	}
	return out, width
}

// FromPixels wraps a flat row-major buffer as an *image.Gray.
// The buffer is copied.
func FromPixels(pix []byte, width int) (*image.Gray, error) {
	if len(pix) == 0 || width <= 0 || len(pix)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes, width %d", ErrInvalidDimensions, len(pix), width)
	}

	height := len(pix) / width
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img, nil
}

// Fit downscales img with Catmull-Rom resampling so that its longer side is
// at most maxSide pixels, preserving the aspect ratio. Images that already
// fit, and maxSide <= 0, return img unchanged.
func Fit(img *image.Gray, maxSide int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewGray(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
