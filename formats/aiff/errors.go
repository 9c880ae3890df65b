// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile         = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnsupportedLayout   = errors.New("unsupported AIFF layout")

	// ErrInvalidChannels is returned by Encode.
	ErrInvalidChannels = errors.New("channel count must be positive")
)
