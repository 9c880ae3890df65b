// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// CollectMono drains src through a Resampler (skipped when the rates already
// match) and a MonoMixer and returns every sample at targetRate.
// bufferSize is the read size used against the pipeline.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	heights, err := audio.CollectMono(src, 8000, 4096)
func CollectMono(src Source, targetRate int, bufferSize int) ([]float32, error) {
	if targetRate <= 0 || bufferSize <= 0 {
		return nil, ErrInvalidFormat
	}

	var stage Source = src
	if src.SampleRate() != targetRate {
		stage = NewResampler(src, targetRate)
	}
	mono := NewMonoMixer(stage)

	out := make([]float32, 0, targetRate)
	buf := make([]float32, bufferSize)
	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source that neither progresses nor ends is treated as ended
			return out, nil
		}
	}
}
