package ycbcr

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"github.com/elixir-image/ycbcr/internal/recomb"
)

// RGBA renders a 3-band image as a stdlib image.RGBA, clamping each sample
// to [0, 255] and rounding to the nearest integer. The alpha channel is
// fully opaque.
//
// This is where the display-range clamp the transform stage deliberately
// skips finally happens. Samples are assumed to use the 8-bit scale; convert
// other bit depths before calling.
func (m Image) RGBA() (*image.RGBA, error) {
	if len(m.Bands) != 3 {
		return nil, errDimensionMismatch("need 3 bands for RGBA output, have %d", len(m.Bands))
	}
	width, height := m.Width(), m.Height()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			r := recomb.ClampFloat64(m.Bands[0].Samples[idx], 0, 255)
			g := recomb.ClampFloat64(m.Bands[1].Samples[idx], 0, 255)
			b := recomb.ClampFloat64(m.Bands[2].Samples[idx], 0, 255)

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(r + 0.5),
				G: uint8(g + 0.5),
				B: uint8(b + 0.5),
				A: 255,
			})
		}
	}
	return img, nil
}

// RGBA64 renders a 3-band image as a 16-bit image.RGBA64. Samples on the
// 8-bit scale are widened to 16 bits the same way the stdlib does (v * 257).
func (m Image) RGBA64() (*image.RGBA64, error) {
	if len(m.Bands) != 3 {
		return nil, errDimensionMismatch("need 3 bands for RGBA64 output, have %d", len(m.Bands))
	}
	width, height := m.Width(), m.Height()

	img := image.NewRGBA64(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			r := recomb.ClampFloat64(m.Bands[0].Samples[idx], 0, 255)
			g := recomb.ClampFloat64(m.Bands[1].Samples[idx], 0, 255)
			b := recomb.ClampFloat64(m.Bands[2].Samples[idx], 0, 255)

			img.SetRGBA64(x, y, color.RGBA64{
				R: uint16(r*257 + 0.5),
				G: uint16(g*257 + 0.5),
				B: uint16(b*257 + 0.5),
				A: 65535,
			})
		}
	}
	return img, nil
}

// Raw serializes the image as band-interleaved little-endian float64
// samples, without clamping or rescaling. The layout is pixel-major: all
// bands of pixel 0, then all bands of pixel 1, and so on.
func (m Image) Raw() []byte {
	if len(m.Bands) == 0 {
		return nil
	}
	n := m.Width() * m.Height()
	bands := len(m.Bands)

	out := make([]byte, n*bands*8)
	for idx := 0; idx < n; idx++ {
		for b := 0; b < bands; b++ {
			off := (idx*bands + b) * 8
			binary.LittleEndian.PutUint64(out[off:], math.Float64bits(m.Bands[b].Samples[idx]))
		}
	}
	return out
}
