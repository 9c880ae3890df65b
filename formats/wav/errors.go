// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNotPCM               = errors.New("not integer PCM")
	ErrUnsupportedBitDepth  = errors.New("unsupported bit depth")
	ErrInvalidChannels      = errors.New("channel count must be positive")
)
