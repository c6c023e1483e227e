//go:build ignore

// Command-line benchmark for the YCbCr reconstruction pipeline.
//
// Converts a black 4:2:0 frame of the requested size and reports wall time
// for the in-memory path and for the path that also serializes the result.
//
// Run with: go run benchmark_compare.go 1920 1080
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/elixir-image/ycbcr"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s WIDTH HEIGHT\n", os.Args[0])
		os.Exit(1)
	}

	width, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid width: %v\n", err)
		os.Exit(1)
	}
	height, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid height: %v\n", err)
		os.Exit(1)
	}

	const shift = 1
	factor := 1 << shift

	y, err := ycbcr.NewPlane(width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "luma plane: %v\n", err)
		os.Exit(1)
	}
	cb, err := ycbcr.NewPlane(width>>shift, height>>shift)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cb plane: %v\n", err)
		os.Exit(1)
	}
	cr, err := ycbcr.NewPlane(width>>shift, height>>shift)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cr plane: %v\n", err)
		os.Exit(1)
	}

	bench("linear", func() error {
		_, err := ycbcr.Convert(y, cb, cr, factor)
		return err
	})

	bench("plus serialize", func() error {
		img, err := ycbcr.Convert(y, cb, cr, factor)
		if err != nil {
			return err
		}
		_ = img.Raw()
		return nil
	})
}

func bench(msg string, fn func() error) {
	start := time.Now()
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %.1fms\n", msg, float64(time.Since(start).Microseconds())/1000)
}
