package gaussblur

import (
	"fmt"
	"strings"
)

// Precision selects how a pixel's weighted sum is accumulated.
type Precision int

const (
	// PrecisionWrap8 accumulates in an 8-bit register. After each kernel tap
	// the running value is truncated toward zero and wraps modulo 256.
	PrecisionWrap8 Precision = iota

	// PrecisionFloat accumulates in float64 and rounds to the nearest
	// integer, clamped to [0, 255], once per pixel.
	PrecisionFloat
)

// String returns the flag-friendly name of the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionWrap8:
		return "wrap8"
	case PrecisionFloat:
		return "float"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// IsValid reports whether p is a known precision.
func (p Precision) IsValid() bool {
	return p == PrecisionWrap8 || p == PrecisionFloat
}

// ParsePrecision parses the name returned by Precision.String.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap8":
		return PrecisionWrap8, nil
	case "float":
		return PrecisionFloat, nil
	default:
		return 0, fmt.Errorf("%w: unknown precision %q", ErrInvalidArgument, s)
	}
}
