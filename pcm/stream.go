// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"github.com/gopxl/beep"
)

// Format describes the sound for beep. Precision is 2 bytes.
func (s *Sound) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(s.SampleRate),
		NumChannels: max(s.Channels, 1),
		Precision:   2,
	}
}

// Streamer plays the sound once. Mono sounds are sent to both sides;
// channels past the second are dropped. Each call returns a new Streamer
// starting from the beginning.
func (s *Sound) Streamer() beep.Streamer {
	ch := max(s.Channels, 1)
	frames := s.Frames()
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= frames {
			return 0, false
		}
		n := min(len(samples), frames-pos)
		for i := range n {
			base := (pos + i) * ch
			l := float64(s.Samples[base]) / 32768
			r := l
			if ch > 1 {
				r = float64(s.Samples[base+1]) / 32768
			}
			samples[i] = [2]float64{l, r}
		}
		pos += n
		return n, true
	})
}

// FromStreamer drains st into a new Sound with the given rate and channel
// count (1 or 2). Mono output averages the two sides.
func FromStreamer(st beep.Streamer, sampleRate, channels int) (*Sound, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrFormatMismatch, channels)
	}

	out := &Sound{SampleRate: sampleRate, Channels: channels, Samples: []int16{}}
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, frame := range buf[:n] {
			if channels == 1 {
				out.Samples = append(out.Samples, quantize((frame[0]+frame[1])/2))
				continue
			}
			out.Samples = append(out.Samples, quantize(frame[0]), quantize(frame[1]))
		}
		if !ok {
			break
		}
	}
	if err := st.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return out, nil
}

func quantize(v float64) int16 {
	v = max(-1, min(1, v))
	return int16(v * 32767)
}
