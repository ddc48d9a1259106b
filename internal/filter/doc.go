// Package filter implements the Gaussian convolution core shared by the
// sequential and parallel blur paths.
//
// The package operates on flat grayscale buffers: a []byte in row-major
// order whose row stride equals the image width. It provides:
//   - 2-D Gaussian kernel generation (normalized to sum to 1)
//   - input validation common to every execution mode
//   - row-range convolution kernels that write only the rows they are given
//
// Row-range functions never touch cells outside [rowStart, rowEnd), so callers
// may run disjoint ranges concurrently against the same destination slice.
package filter
