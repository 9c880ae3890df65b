// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/physaudio/formats/aiff"
	"github.com/ik5/physaudio/formats/wav"
)

type encodeFunc func(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error

func rawEncode(ws io.WriteSeeker, _, _ int, samples []int16) error {
	_, err := ws.Write(WrapPCM(samples, 0, 1).Bytes())
	return err
}

func encoderFor(path string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		return wav.Encode, nil
	case ".aif", ".aiff":
		return aiff.Encode, nil
	case ".pcm", ".raw":
		return rawEncode, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContainer, ext)
	}
}

// Write stores s at path. The container follows the extension: .wav,
// .aif/.aiff, or .pcm/.raw for headerless little-endian samples.
func Write(s *Sound, path string) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	if len(s.Samples)%max(s.Channels, 1) != 0 {
		return ErrPartialFrame
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	if err := encode(f, s.SampleRate, max(s.Channels, 1), s.Samples); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo streams s to w as a WAV file with a 44-byte header.
func (s *Sound) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := wav.WritePCM16(cw, s.SampleRate, max(s.Channels, 1), s.Samples); err != nil {
		return cw.n, fmt.Errorf("%w", err)
	}
	return cw.n, nil
}
