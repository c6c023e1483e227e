package ycbcr

import (
	"runtime"

	"github.com/elixir-image/ycbcr/internal/recomb"
	"github.com/elixir-image/ycbcr/internal/resample"
)

// Upsample scales a plane up by an integer factor using bilinear
// interpolation with pixel-center alignment. The result has dimensions
// Width*factor x Height*factor. factor 1 returns a copy of the input.
//
// The input plane is never modified.
func Upsample(p Plane, factor int) (Plane, error) {
	return UpsampleConfig(p, factor, nil)
}

// UpsampleConfig is Upsample with an explicit configuration. Only
// Config.Workers is consulted.
func UpsampleConfig(p Plane, factor int, cfg *Config) (Plane, error) {
	if err := p.validate(); err != nil {
		return Plane{}, err
	}
	if factor <= 0 {
		return Plane{}, errInvalidDimension("invalid subsampling factor: %d", factor)
	}

	out := Plane{
		Width:  p.Width * factor,
		Height: p.Height * factor,
	}
	out.Samples = resample.Bilinear(p.Samples, p.Width, p.Height, factor, workers(cfg))
	return out, nil
}

// Transform recombines three full-resolution planes into a 3-band sRGB
// image. The planes are band-joined in Y, Cb, Cr order, shifted down by
// offsets elementwise, and multiplied per pixel by m.
//
// The arithmetic is unclamped: out-of-range results are preserved so further
// stages can operate losslessly. Use Image.RGBA or Image.RGBA64 to clamp to
// display range.
//
// All three planes must share identical dimensions; Cb and Cr must already
// be upsampled to luma resolution.
func Transform(y, cb, cr Plane, m Matrix3x3, offsets [3]float64) (Image, error) {
	return transform(y, cb, cr, m, offsets, InterpretationSRGB, nil)
}

func transform(y, cb, cr Plane, m Matrix3x3, offsets [3]float64, tag Interpretation, cfg *Config) (Image, error) {
	for _, p := range []Plane{y, cb, cr} {
		if err := p.validate(); err != nil {
			return Image{}, err
		}
	}
	if cb.Width != y.Width || cb.Height != y.Height {
		return Image{}, errDimensionMismatch("Cb plane is %dx%d, luma is %dx%d",
			cb.Width, cb.Height, y.Width, y.Height)
	}
	if cr.Width != y.Width || cr.Height != y.Height {
		return Image{}, errDimensionMismatch("Cr plane is %dx%d, luma is %dx%d",
			cr.Width, cr.Height, y.Width, y.Height)
	}

	n := y.Width * y.Height
	bands := [3][]float64{
		make([]float64, n),
		make([]float64, n),
		make([]float64, n),
	}

	// Band join and level shift in one pass over each source plane.
	recomb.ShiftInto(bands[0], y.Samples, offsets[0])
	recomb.ShiftInto(bands[1], cb.Samples, offsets[1])
	recomb.ShiftInto(bands[2], cr.Samples, offsets[2])

	recomb.Apply(bands[0], bands[1], bands[2], m, workers(cfg))

	return Image{
		Bands: []Plane{
			{Width: y.Width, Height: y.Height, Samples: bands[0]},
			{Width: y.Width, Height: y.Height, Samples: bands[1]},
			{Width: y.Width, Height: y.Height, Samples: bands[2]},
		},
		Interpretation: tag,
	}, nil
}

// Convert runs the whole reconstruction pipeline: Cb and Cr are upsampled by
// factor, then the three planes are transformed with the standard BT.601
// matrix and [16, 128, 128] offsets.
//
// For a 4:2:0 source factor is 2; factor 1 converts already full-resolution
// planes.
func Convert(y, cb, cr Plane, factor int) (Image, error) {
	return ConvertConfig(y, cb, cr, factor, nil)
}

// ConvertConfig converts with the specified configuration. A nil cfg is
// equivalent to DefaultConfig().
func ConvertConfig(y, cb, cr Plane, factor int, cfg *Config) (Image, error) {
	upCb, err := UpsampleConfig(cb, factor, cfg)
	if err != nil {
		return Image{}, err
	}
	upCr, err := UpsampleConfig(cr, factor, cfg)
	if err != nil {
		return Image{}, err
	}

	m := &YCbCrToRGB
	offsets := &StdOffsets
	tag := InterpretationSRGB
	if cfg != nil {
		if cfg.Matrix != nil {
			m = cfg.Matrix
		}
		if cfg.Offsets != nil {
			offsets = cfg.Offsets
		}
		if cfg.Interpretation != InterpretationNone {
			tag = cfg.Interpretation
		}
	}

	return transform(y, upCb, upCr, *m, *offsets, tag, cfg)
}

// workers resolves the goroutine budget for row-parallel stages.
func workers(cfg *Config) int {
	if cfg != nil && cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}
