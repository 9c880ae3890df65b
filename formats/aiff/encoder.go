// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	"github.com/ik5/physaudio/formats/internal/pcmsrc"
)

// Encode writes interleaved 16-bit samples as an AIFF file.
func Encode(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	enc := goaiff.NewEncoder(ws, sampleRate, 16, channels)
	if err := enc.Write(pcmsrc.IntBuffer(samples, sampleRate, channels)); err != nil {
		return fmt.Errorf("encoding aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing aiff: %w", err)
	}
	return nil
}
