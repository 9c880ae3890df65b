// SPDX-License-Identifier: EPL-2.0

package utils

// Convolve returns the full linear convolution of x and h, of length
// len(x)+len(h)-1. Either input being empty gives an empty result.
func Convolve(x, h []float32) []float32 {
	if len(x) == 0 || len(h) == 0 {
		return []float32{}
	}

	out := make([]float32, len(x)+len(h)-1)
	for i, xv := range x {
		if xv == 0 {
			continue
		}
		acc := out[i : i+len(h)]
		for j, hv := range h {
			acc[j] += xv * hv
		}
	}
	return out
}

// Peak returns the largest absolute value in x.
func Peak(x []float32) float32 {
	var peak float32
	for _, v := range x {
		peak = max(peak, v, -v)
	}
	return peak
}

// Scale multiplies every sample of x by g in place.
func Scale(x []float32, g float32) {
	for i := range x {
		x[i] *= g
	}
}
