// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate performs Catmull-Rom interpolation.
// x is the fractional position between y1 and y2 (0 <= x <= 1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// Stretch fills dst by interpolating points across its whole length, so
// dst[0] == points[0] and dst[len(dst)-1] == points[len(points)-1].
// Outer taps past either end are extrapolated linearly.
func Stretch(dst []float32, points []float32) {
	switch {
	case len(dst) == 0:
		return
	case len(points) == 0:
		clear(dst)
		return
	case len(points) == 1 || len(dst) == 1:
		for i := range dst {
			dst[i] = points[0]
		}
		return
	}

	last := len(points) - 1
	at := func(i int) float32 {
		switch {
		case i < 0:
			return 2*points[0] - points[1]
		case i > last:
			return 2*points[last] - points[last-1]
		}
		return points[i]
	}

	step := float64(last) / float64(len(dst)-1)
	for i := range dst {
		pos := float64(i) * step
		k := int(pos)
		if k >= last {
			dst[i] = points[last]
			continue
		}
		x := float32(pos - float64(k))
		dst[i] = CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), x)
	}
	dst[len(dst)-1] = points[last]
}
