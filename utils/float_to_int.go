// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
// Out of range input saturates, it never wraps.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the mapping symmetric
	return int16(x * 32767.0)
}

// Quantize converts src into dst with Float32ToInt16 and returns the number
// of samples written, min(len(dst), len(src)).
func Quantize(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}

// Int16ToFloat32 is the inverse scaling used when PCM is read back.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
