// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ik5/physaudio/audio"
	"github.com/ik5/physaudio/utils"
)

// Sound is interleaved 16-bit PCM with its format. The zero Sound is an
// empty buffer whose format is set by the first Append.
type Sound struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// Wrap quantizes samples, clamping to [-1,1]. channels < 1 means mono.
func Wrap(samples []float32, sampleRate, channels int) *Sound {
	out := make([]int16, len(samples))
	utils.Quantize(out, samples)
	return WrapPCM(out, sampleRate, channels)
}

// WrapPCM takes ownership of samples.
func WrapPCM(samples []int16, sampleRate, channels int) *Sound {
	return &Sound{Samples: samples, SampleRate: sampleRate, Channels: max(channels, 1)}
}

// Silence is a zero-length sound. It is a valid result, not an error.
func Silence(sampleRate, channels int) *Sound {
	return WrapPCM([]int16{}, sampleRate, channels)
}

// Length is the number of samples over all channels.
func (s *Sound) Length() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

// Frames is the number of samples per channel.
func (s *Sound) Frames() int {
	if s == nil || s.Channels == 0 {
		return 0
	}
	return len(s.Samples) / s.Channels
}

// IsSilent reports whether the sound has no samples.
func (s *Sound) IsSilent() bool { return s.Length() == 0 }

// ByteCount is the size of Bytes().
func (s *Sound) ByteCount() int { return 2 * s.Length() }

// Bytes returns the samples as little-endian 16-bit PCM.
func (s *Sound) Bytes() []byte {
	out := make([]byte, s.ByteCount())
	for i, v := range s.samples() {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

func (s *Sound) samples() []int16 {
	if s == nil {
		return nil
	}
	return s.Samples
}

// Base64 is Bytes() in standard base64, the form sounds are shipped in
// over text protocols.
func (s *Sound) Base64() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// Duration is the playing time of the sound.
func (s *Sound) Duration() time.Duration {
	if s == nil || s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// Append adds o to the end of s. An empty s with no format adopts o's.
// Sounds of a different format are rejected rather than converted.
func (s *Sound) Append(o *Sound) error {
	if o.IsSilent() {
		return nil
	}
	if len(o.Samples)%max(o.Channels, 1) != 0 {
		return ErrPartialFrame
	}
	if s.SampleRate == 0 && s.Channels == 0 && len(s.Samples) == 0 {
		s.SampleRate, s.Channels = o.SampleRate, o.Channels
	}
	if s.SampleRate != o.SampleRate || s.Channels != o.Channels {
		return fmt.Errorf("%w: %d Hz/%d ch onto %d Hz/%d ch",
			ErrFormatMismatch, o.SampleRate, o.Channels, s.SampleRate, s.Channels)
	}
	s.Samples = append(s.Samples, o.Samples...)
	return nil
}

// Truncate drops everything after the first n samples.
func (s *Sound) Truncate(n int) {
	s.Samples = s.Samples[:max(0, min(n, len(s.Samples)))]
}

// Clone returns a deep copy of s.
func (s *Sound) Clone() *Sound {
	if s == nil {
		return nil
	}
	c := *s
	c.Samples = append([]int16(nil), s.Samples...)
	return &c
}

// Float32 returns the samples scaled to [-1,1).
func (s *Sound) Float32() []float32 {
	out := make([]float32, s.Length())
	for i, v := range s.samples() {
		out[i] = utils.Int16ToFloat32(v)
	}
	return out
}

// Source exposes the sound as an audio.Source, so it can go through the
// same resampling pipeline as decoded files.
func (s *Sound) Source() (*audio.BufferSource, error) {
	src, err := audio.NewBufferSource(s.Float32(), s.SampleRate, s.Channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
