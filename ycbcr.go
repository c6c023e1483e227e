// Package ycbcr reconstructs full-resolution RGB images from subsampled
// YCbCr planes.
//
// YCbCr sources (JPEG, MPEG-family codecs) store the two chroma planes at a
// lower resolution than luma. Turning a decoded frame into RGB therefore
// takes two steps: upsample Cb and Cr back to luma resolution, then apply a
// level shift and a 3x3 recombination matrix per pixel.
//
// Basic usage for a 4:2:0 source:
//
//	y, _ := ycbcr.PlaneFromBytes(lumaPix, w, h)
//	cb, _ := ycbcr.PlaneFromBytes(cbPix, w/2, h/2)
//	cr, _ := ycbcr.PlaneFromBytes(crPix, w/2, h/2)
//	img, err := ycbcr.Convert(y, cb, cr, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rgba := img.RGBA()
//
// The two stages are also exposed separately as Upsample and Transform so
// callers can supply their own matrices or insert processing between them.
//
// Upsampling uses bilinear interpolation with pixel-center alignment: input
// sample centers map to output coordinates via (out+0.5)/factor - 0.5. This
// keeps the chroma grid registered with luma and avoids the half-pixel color
// fringe that nearest-pixel replication introduces at block boundaries.
//
// Transform arithmetic is deliberately unclamped so stages compose without
// losing information; Image.RGBA and Image.RGBA64 clamp to display range at
// the very end.
package ycbcr

import (
	"github.com/elixir-image/ycbcr/internal/recomb"
)

// Interpretation describes how the bands of an Image should be read for
// display or storage. It is purely descriptive and never changes sample
// values.
type Interpretation int

const (
	// InterpretationNone indicates no interpretation was attached.
	InterpretationNone Interpretation = iota

	// InterpretationSRGB marks a 3-band image as R, G, B in sRGB order.
	InterpretationSRGB

	// InterpretationYCbCr marks a 3-band image as Y, Cb, Cr.
	InterpretationYCbCr
)

// String returns the string representation of the interpretation.
func (i Interpretation) String() string {
	switch i {
	case InterpretationNone:
		return "none"
	case InterpretationSRGB:
		return "sRGB"
	case InterpretationYCbCr:
		return "YCbCr"
	default:
		return "unknown"
	}
}

// Plane is a dense 2D grid of samples, one per pixel, stored row-major.
// Planes are treated as immutable values: every stage returns a fresh Plane
// and never writes to its inputs.
type Plane struct {
	// Width is the plane width in samples.
	Width int

	// Height is the plane height in samples.
	Height int

	// Samples holds Width*Height values in row-major order.
	Samples []float64
}

// NewPlane returns a zero-filled plane of the given dimensions.
func NewPlane(width, height int) (Plane, error) {
	if err := checkDims(width, height); err != nil {
		return Plane{}, err
	}
	return Plane{
		Width:   width,
		Height:  height,
		Samples: make([]float64, width*height),
	}, nil
}

// PlaneFromBytes builds a plane from 8-bit samples, as produced by most
// entropy decoders. The byte values are widened without rescaling.
func PlaneFromBytes(pix []byte, width, height int) (Plane, error) {
	if err := checkDims(width, height); err != nil {
		return Plane{}, err
	}
	if len(pix) != width*height {
		return Plane{}, errInvalidDimension("sample count %d does not match %dx%d", len(pix), width, height)
	}
	samples := make([]float64, len(pix))
	for i, v := range pix {
		samples[i] = float64(v)
	}
	return Plane{Width: width, Height: height, Samples: samples}, nil
}

// At returns the sample at (x, y). The caller must keep coordinates within
// the plane bounds.
func (p Plane) At(x, y int) float64 {
	return p.Samples[y*p.Width+x]
}

// validate reports whether the plane's dimensions and backing slice are
// consistent.
func (p Plane) validate() error {
	if err := checkDims(p.Width, p.Height); err != nil {
		return err
	}
	if len(p.Samples) != p.Width*p.Height {
		return errInvalidDimension("sample count %d does not match %dx%d", len(p.Samples), p.Width, p.Height)
	}
	return nil
}

// Image is an ordered set of co-registered planes sharing pixel coordinates,
// tagged with an interpretation. All bands have identical dimensions.
type Image struct {
	// Bands holds the planes in band order (R, G, B for sRGB images).
	Bands []Plane

	// Interpretation states how the bands should be read.
	Interpretation Interpretation
}

// Width returns the image width, or 0 for an image with no bands.
func (m Image) Width() int {
	if len(m.Bands) == 0 {
		return 0
	}
	return m.Bands[0].Width
}

// Height returns the image height, or 0 for an image with no bands.
func (m Image) Height() int {
	if len(m.Bands) == 0 {
		return 0
	}
	return m.Bands[0].Height
}

// Matrix3x3 is a row-major recombination matrix mapping one 3-band color
// space to another: out[i] = sum over j of m[i][j] * in[j].
type Matrix3x3 [3][3]float64

// Inverse returns the inverse matrix, computed with the explicit cofactor
// formula. ok is false when the matrix is singular.
func (m Matrix3x3) Inverse() (inv Matrix3x3, ok bool) {
	return recomb.Inverse(m)
}

// YCbCrToRGB is the inverse ITU-R BT.601 matrix, the standard transform for
// JPEG and SD video after the [16, 128, 128] level shift.
var YCbCrToRGB = Matrix3x3{
	{1.0, 0.0, 1.402},
	{1.0, -0.344136, -0.714136},
	{1.0, 1.772, 0.0},
}

// YCbCr709ToRGB is the inverse ITU-R BT.709 matrix used by HD video.
var YCbCr709ToRGB = Matrix3x3{
	{1.0, 0.0, 1.5748},
	{1.0, -0.1873, -0.4681},
	{1.0, 1.8556, 0.0},
}

// StdOffsets is the standard 8-bit YCbCr level shift: luma rides on a
// 16..235 range and chroma is centered at 128.
var StdOffsets = [3]float64{16, 128, 128}

// Config holds optional conversion settings. A nil *Config selects the
// standard BT.601 matrix, the standard offsets, and one worker per CPU.
type Config struct {
	// Matrix overrides the recombination matrix (nil for YCbCrToRGB).
	Matrix *Matrix3x3

	// Offsets overrides the per-band level shift (nil for StdOffsets).
	Offsets *[3]float64

	// Interpretation overrides the tag attached to the result.
	// InterpretationNone means the default, InterpretationSRGB.
	Interpretation Interpretation

	// Workers caps the number of goroutines used for row-parallel work.
	// 0 means one per available CPU; 1 forces sequential execution.
	Workers int
}

// DefaultConfig returns the configuration used when Convert is called with
// a nil config.
func DefaultConfig() *Config {
	return &Config{
		Matrix:         &YCbCrToRGB,
		Offsets:        &StdOffsets,
		Interpretation: InterpretationSRGB,
	}
}

func checkDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return errInvalidDimension("invalid plane dimensions: %dx%d", width, height)
	}
	return nil
}
