// Package recomb implements the per-pixel linear algebra behind YCbCr to RGB
// conversion: elementwise level shifts and 3x3 recombination matrices applied
// across three co-registered sample bands.
package recomb

import (
	"math"
	"sync"
)

// minParallelSamples is the band length below which Apply runs sequentially.
// Spinning up goroutines costs more than the matrix math for small planes.
const minParallelSamples = 1 << 15

// LevelShift subtracts offset from every sample in place.
func LevelShift(data []float64, offset float64) {
	for i := range data {
		data[i] -= offset
	}
}

// LevelShiftInverse adds offset back to every sample in place.
func LevelShiftInverse(data []float64, offset float64) {
	for i := range data {
		data[i] += offset
	}
}

// ShiftInto writes src minus offset into dst. The slices must have equal
// length and must not alias each other.
func ShiftInto(dst, src []float64, offset float64) {
	for i, v := range src {
		dst[i] = v - offset
	}
}

// Apply recombines three equal-length bands in place with a 3x3 matrix:
// band[i][s] becomes sum over j of m[i][j] * band[j][s].
//
// Samples are independent, so the work is split into contiguous ranges
// across workers goroutines. workers <= 1 forces sequential execution.
func Apply(b0, b1, b2 []float64, m [3][3]float64, workers int) {
	n := len(b0)
	if workers <= 1 || n < minParallelSamples {
		applyRange(b0, b1, b2, m, 0, n)
		return
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			applyRange(b0, b1, b2, m, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

func applyRange(b0, b1, b2 []float64, m [3][3]float64, lo, hi int) {
	for s := lo; s < hi; s++ {
		v0, v1, v2 := b0[s], b1[s], b2[s]
		b0[s] = m[0][0]*v0 + m[0][1]*v1 + m[0][2]*v2
		b1[s] = m[1][0]*v0 + m[1][1]*v1 + m[1][2]*v2
		b2[s] = m[2][0]*v0 + m[2][1]*v1 + m[2][2]*v2
	}
}

// Inverse computes the inverse of a 3x3 matrix with the explicit cofactor
// formula. ok is false when the matrix is singular, in which case inv is the
// zero matrix.
func Inverse(m [3][3]float64) (inv [3][3]float64, ok bool) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	if math.Abs(det) < 1e-12 {
		return inv, false
	}

	invDet := 1.0 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return inv, true
}

// ClampFloat64 clamps a float64 value to the given range.
func ClampFloat64(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
