// Package testutil synthesizes grayscale fixture images for tests,
// benchmarks and the gblur command.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gogpu/gaussblur/internal/filter"
)

// MaxRandomValue is the exclusive upper bound of generated samples.
const MaxRandomValue = 100

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image dimensions must be > 0: %dx%d", filter.ErrInvalidArgument, width, height)
	}
	return nil
}

// RandomImage returns a width*height buffer of uniform samples in
// [0, MaxRandomValue), seeded from the clock.
func RandomImage(width, height int) ([]byte, error) {
	return SeededImage(time.Now().UnixNano(), width, height)
}

// SeededImage is RandomImage with a fixed seed for reproducibility.
func SeededImage(seed int64, width, height int) ([]byte, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, width*height)
	for i := range out {
		out[i] = byte(rng.Intn(MaxRandomValue))
	}
	return out, nil
}

// Constant returns a width*height buffer filled with value.
// Non-positive dimensions yield an empty buffer.
func Constant(value byte, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]byte, width*height)
	for i := range out {
		out[i] = value
	}
	return out
}

// MustSeededImage is SeededImage for dimensions known to be valid.
// It panics on error.
func MustSeededImage(seed int64, width, height int) []byte {
	out, err := SeededImage(seed, width, height)
	if err != nil {
		panic(err)
	}
	return out
}
