// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrFormatMismatch is returned when sounds of different rates or
	// channel counts are joined.
	ErrFormatMismatch = errors.New("sample rate or channel count mismatch")

	ErrUnsupportedContainer = errors.New("unsupported container")
	ErrPartialFrame         = errors.New("sample count is not a multiple of channels")
)
