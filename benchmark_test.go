package gaussblur

import (
	"fmt"
	"testing"

	"github.com/gogpu/gaussblur/internal/testutil"
)

// =============================================================================
// Filter Benchmarks
// =============================================================================

var benchSizes = []struct {
	name          string
	width, height int
}{
	{"VGA", 640, 480},
	{"HD", 1280, 720},
}

func BenchmarkFilter(b *testing.B) {
	for _, sz := range benchSizes {
		for _, core := range []int{3, 9} {
			img := testutil.MustSeededImage(1, sz.width, sz.height)

			b.Run(fmt.Sprintf("%s/core%d", sz.name, core), func(b *testing.B) {
				b.SetBytes(int64(len(img)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = Filter(img, sz.width, WithCoreSize(core))
				}
			})
		}
	}
}

func BenchmarkFilterParallel(b *testing.B) {
	for _, sz := range benchSizes {
		for _, core := range []int{3, 9} {
			img := testutil.MustSeededImage(1, sz.width, sz.height)

			b.Run(fmt.Sprintf("%s/core%d", sz.name, core), func(b *testing.B) {
				b.SetBytes(int64(len(img)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = FilterParallel(img, sz.width, WithCoreSize(core))
				}
			})
		}
	}
}

func BenchmarkEngineFilterParallel(b *testing.B) {
	img := testutil.MustSeededImage(1, 1280, 720)
	e := NewEngine(WithCoreSize(9))
	defer e.Close()

	b.SetBytes(int64(len(img)))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.FilterParallel(img, 1280)
	}
}

func BenchmarkFilterFloat(b *testing.B) {
	img := testutil.MustSeededImage(1, 1280, 720)

	b.SetBytes(int64(len(img)))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Filter(img, 1280, WithCoreSize(9), WithPrecision(PrecisionFloat))
	}
}

func BenchmarkBuildKernel(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = BuildKernel(21, 5)
	}
}
