// Package resample implements bilinear upsampling of sample planes by
// integer factors, as needed to bring subsampled chroma back to luma
// resolution.
//
// Sample centers are aligned between the two grids: output coordinate x maps
// to input coordinate (x+0.5)/factor - 0.5. Coordinates falling outside the
// source plane clamp to the nearest edge sample.
package resample

import "sync"

// minParallelRows is the output height below which Bilinear runs
// sequentially.
const minParallelRows = 64

// axis holds the precomputed interpolation taps for one dimension. For an
// integer factor the fractional positions repeat with period factor, but the
// tables are small enough to just store per output coordinate.
type axis struct {
	lo []int     // index of the left/top source sample
	hi []int     // index of the right/bottom source sample
	w  []float64 // weight of the hi sample; lo gets 1-w
}

// makeAxis builds the tap table mapping out output samples onto in source
// samples with pixel-center alignment and edge clamping.
func makeAxis(in, out, factor int) axis {
	a := axis{
		lo: make([]int, out),
		hi: make([]int, out),
		w:  make([]float64, out),
	}
	for i := 0; i < out; i++ {
		src := (float64(i)+0.5)/float64(factor) - 0.5
		if src < 0 {
			src = 0
		}
		if src > float64(in-1) {
			src = float64(in - 1)
		}
		lo := int(src)
		hi := lo + 1
		if hi > in-1 {
			hi = in - 1
		}
		a.lo[i] = lo
		a.hi[i] = hi
		a.w[i] = src - float64(lo)
	}
	return a
}

// Bilinear upsamples src (width x height, row-major) by factor into a new
// slice of size width*factor * height*factor. The source is only read, so
// concurrent calls may share it. workers <= 1 forces sequential execution.
func Bilinear(src []float64, width, height, factor, workers int) []float64 {
	outW := width * factor
	outH := height * factor
	dst := make([]float64, outW*outH)

	xs := makeAxis(width, outW, factor)
	ys := makeAxis(height, outH, factor)

	if workers <= 1 || outH < minParallelRows {
		bilinearRows(dst, src, width, outW, xs, ys, 0, outH)
		return dst
	}
	if workers > outH {
		workers = outH
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * outH / workers
		hi := (w + 1) * outH / workers
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			bilinearRows(dst, src, width, outW, xs, ys, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return dst
}

// bilinearRows fills output rows [rowLo, rowHi). Each output row blends two
// source rows, so the horizontal interpolation runs on both before the
// vertical mix.
func bilinearRows(dst, src []float64, srcW, outW int, xs, ys axis, rowLo, rowHi int) {
	for y := rowLo; y < rowHi; y++ {
		top := src[ys.lo[y]*srcW:]
		bot := src[ys.hi[y]*srcW:]
		wy := ys.w[y]
		row := dst[y*outW : (y+1)*outW]

		for x := 0; x < outW; x++ {
			wx := xs.w[x]
			t := top[xs.lo[x]] + wx*(top[xs.hi[x]]-top[xs.lo[x]])
			b := bot[xs.lo[x]] + wx*(bot[xs.hi[x]]-bot[xs.lo[x]])
			row[x] = t + wy*(b-t)
		}
	}
}
