// Command gblur blurs a grayscale image with gaussblur.
//
// The input is either an image file (-in) or a random fixture (-random WxH).
// The result can be written as PNG with -out. With -mode both the sequential
// and parallel filters are run on the same input and compared byte for byte.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gaussblur"
	"github.com/gogpu/gaussblur/internal/grayimg"
	"github.com/gogpu/gaussblur/internal/testutil"
)

// errMismatch is returned when -mode both finds differing outputs.
var errMismatch = errors.New("gblur: sequential and parallel outputs differ")

type config struct {
	in        string
	random    string
	out       string
	size      int
	sigma     float64
	workers   int
	mode      string
	precision string
	maxSide   int
	verbose   bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("gblur: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("gblur", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input image file (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&cfg.random, "random", "", "generate a random WxH input instead of reading -in")
	fs.StringVar(&cfg.out, "out", "", "output PNG file")
	fs.IntVar(&cfg.size, "size", gaussblur.DefaultCoreSize, "kernel size (odd, >= 3)")
	fs.Float64Var(&cfg.sigma, "sigma", gaussblur.DefaultDeviation, "Gaussian standard deviation")
	fs.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.mode, "mode", "both", "filter mode: seq, par or both")
	fs.StringVar(&cfg.precision, "precision", "wrap8", "accumulation: wrap8 or float")
	fs.IntVar(&cfg.maxSide, "max", 0, "downscale input so its longer side is at most this (0 = off)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if (cfg.in == "") == (cfg.random == "") {
		return cfg, errors.New("exactly one of -in or -random is required")
	}
	switch cfg.mode {
	case "seq", "par", "both":
	default:
		return cfg, fmt.Errorf("unknown -mode %q", cfg.mode)
	}
	return cfg, nil
}

// parseSize parses a "WxH" dimension string.
func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return width, height, nil
}

// loadInput returns the flat pixel buffer and its width.
func loadInput(cfg config) ([]byte, int, error) {
	if cfg.random != "" {
		w, h, err := parseSize(cfg.random)
		if err != nil {
			return nil, 0, err
		}
		pix, err := testutil.RandomImage(w, h)
		return pix, w, err
	}

	img, err := grayimg.Load(cfg.in)
	if err != nil {
		return nil, 0, err
	}
	pix, width := grayimg.Pixels(grayimg.Fit(img, cfg.maxSide))
	return pix, width, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gaussblur.SetLogger(logger)
	defer gaussblur.SetLogger(nil)

	precision, err := gaussblur.ParsePrecision(cfg.precision)
	if err != nil {
		return err
	}

	pix, width, err := loadInput(cfg)
	if err != nil {
		return err
	}

	engine := gaussblur.NewEngine(
		gaussblur.WithCoreSize(cfg.size),
		gaussblur.WithDeviation(cfg.sigma),
		gaussblur.WithWorkers(cfg.workers),
		gaussblur.WithPrecision(precision),
	)
	defer engine.Close()

	p := message.NewPrinter(language.English)
	reportHost(p, stdout, engine.Workers())
	p.Fprintf(stdout, "input: %dx%d (%d pixels), kernel %dx%d sigma %.2f, %s\n",
		width, len(pix)/max(width, 1), len(pix), cfg.size, cfg.size, cfg.sigma, precision)

	var seq, par []byte
	if cfg.mode != "par" {
		if seq, err = timed(p, stdout, "sequential", len(pix), func() ([]byte, error) {
			return engine.Filter(pix, width)
		}); err != nil {
			return err
		}
	}
	if cfg.mode != "seq" {
		if par, err = timed(p, stdout, "parallel", len(pix), func() ([]byte, error) {
			return engine.FilterParallel(pix, width)
		}); err != nil {
			return err
		}
	}

	result := seq
	if result == nil {
		result = par
	}
	if cfg.mode == "both" {
		if !bytes.Equal(seq, par) {
			return errMismatch
		}
		p.Fprintln(stdout, "outputs identical")
	}

	if cfg.out == "" {
		return nil
	}
	img, err := grayimg.FromPixels(result, width)
	if err != nil {
		return err
	}
	if err := grayimg.Save(cfg.out, img); err != nil {
		return err
	}
	logger.Info("gblur: wrote output", "path", cfg.out)
	return nil
}

func timed(p *message.Printer, w io.Writer, name string, pixels int, fn func() ([]byte, error)) ([]byte, error) {
	start := time.Now()
	out, err := fn()
	if err != nil {
		return nil, fmt.Errorf("%s filter: %w", name, err)
	}
	elapsed := time.Since(start)

	rate := float64(pixels) / max(elapsed.Seconds(), 1e-9) / 1e6
	p.Fprintf(w, "%-10s %12v  %.1f Mpx/s\n", name, elapsed.Round(time.Microsecond), rate)
	return out, nil
}

func reportHost(p *message.Printer, w io.Writer, workers int) {
	p.Fprintf(w, "cpu: %s (%d physical, %d logical cores, avx2=%t), workers %d\n",
		cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores,
		cpuid.CPU.Supports(cpuid.AVX2), workers)
}
