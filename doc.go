// Package gaussblur applies a Gaussian blur to grayscale images stored as
// flat byte buffers.
//
// # Overview
//
// An image is a []byte in row-major order together with its width; the height
// is derived from the buffer length. The package builds a normalized square
// Gaussian kernel and convolves the image with it, either sequentially or in
// parallel. Both modes produce byte-identical output.
//
// # Quick Start
//
//	import "github.com/gogpu/gaussblur"
//
//	// 5x5 kernel, sigma 1.5, sequential
//	out, err := gaussblur.Filter(pix, width, gaussblur.WithCoreSize(5), gaussblur.WithDeviation(1.5))
//
//	// Same result, rows split across GOMAXPROCS workers
//	out, err = gaussblur.FilterParallel(pix, width, gaussblur.WithCoreSize(5), gaussblur.WithDeviation(1.5))
//
// For repeated parallel calls, an Engine keeps its worker pool alive:
//
//	e := gaussblur.NewEngine(gaussblur.WithWorkers(8))
//	defer e.Close()
//	out, err := e.FilterParallel(pix, width)
//
// # Border Policy
//
// Output pixels closer than the kernel radius (size/2) to any edge are never
// computed and stay zero. They are not copies of the source and are not
// extrapolated.
//
// # Precision
//
// By default each output pixel is accumulated in an 8-bit register: after
// every kernel tap the running value is truncated toward zero and wraps
// modulo 256 (PrecisionWrap8). This keeps the output compatible with
// existing fixed-width implementations. PrecisionFloat accumulates in
// float64 and rounds and clamps once per pixel instead.
//
// # Errors
//
// All caller-input errors wrap ErrInvalidArgument and are reported before any
// pixel is touched. Use errors.Is to test for them.
package gaussblur
