// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides generated sources for tests. The sources
// satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
	"math/rand/v2"
)

// Waveform returns the value of one sample of one channel.
type Waveform func(sample, channel int) float32

// MockSource generates frames frames from a Waveform.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       Waveform
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{sampleRate: sampleRate, channels: channels, frames: frames, wave: wave}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(sample, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(sample) / float64(sampleRate)))
	})
}

// NewNoiseSource generates reproducible uniform noise in [-amp, amp].
// Channels carry the same value.
func NewNoiseSource(sampleRate, channels, frames int, amp float32, seed uint64) *MockSource {
	values := make([]float32, frames)
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range values {
		values[i] = (rng.Float32()*2 - 1) * amp
	}
	return NewMockSource(sampleRate, channels, frames, func(sample, _ int) float32 {
		return values[sample]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.wave(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
