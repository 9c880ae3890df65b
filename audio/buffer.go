// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource plays back an in-memory slice of interleaved samples.
type BufferSource struct {
	data       []float32
	pos        int
	sampleRate int
	channels   int
}

// NewBufferSource wraps data without copying it.
func NewBufferSource(data []float32, sampleRate, channels int) (*BufferSource, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, ErrInvalidFormat
	}
	return &BufferSource{data: data, sampleRate: sampleRate, channels: channels}, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Remaining is the number of samples not read yet.
func (b *BufferSource) Remaining() int { return len(b.data) - b.pos }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	// whole frames only
	want := len(dst) - len(dst)%b.channels
	n := copy(dst[:want], b.data[b.pos:])
	b.pos += n
	if b.pos >= len(b.data) {
		return n, io.EOF
	}
	return n, nil
}
