package ycbcr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a plane dimension or a
	// subsampling factor is non-positive, or a sample buffer does not
	// match its stated dimensions.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDimensionMismatch is returned when the Y, Cb and Cr planes passed
	// to the transform stage do not share identical dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

func errInvalidDimension(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidDimension)...)
}

func errDimensionMismatch(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrDimensionMismatch)...)
}
