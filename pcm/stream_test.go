// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
)

func TestSound_Streamer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sound *Sound
		want  [][2]float64
	}{
		{"mono to both sides", WrapPCM([]int16{16384, -8192}, 8000, 1), [][2]float64{{0.5, 0.5}, {-0.25, -0.25}}},
		{"stereo", WrapPCM([]int16{16384, -16384}, 8000, 2), [][2]float64{{0.5, -0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := tt.sound.Streamer()
			buf := make([][2]float64, 8)
			n, ok := st.Stream(buf)
			if !ok || n != len(tt.want) {
				t.Fatalf("Stream() = %d, %v, want %d, true", n, ok, len(tt.want))
			}
			for i := range tt.want {
				if buf[i] != tt.want[i] {
					t.Errorf("frame %d = %v, want %v", i, buf[i], tt.want[i])
				}
			}
			if n, ok := st.Stream(buf); n != 0 || ok {
				t.Errorf("Stream() after end = %d, %v, want 0, false", n, ok)
			}
			if st.Err() != nil {
				t.Errorf("Err() = %v", st.Err())
			}
		})
	}
}

func TestSound_Format(t *testing.T) {
	t.Parallel()

	f := WrapPCM(nil, 48000, 2).Format()
	if f.SampleRate != beep.SampleRate(48000) || f.NumChannels != 2 || f.Precision != 2 {
		t.Errorf("Format() = %+v", f)
	}
}

func TestFromStreamer(t *testing.T) {
	t.Parallel()

	src := WrapPCM([]int16{16384, 0, -16384, 8192}, 8000, 2)

	mono, err := FromStreamer(src.Streamer(), 8000, 1)
	if err != nil {
		t.Fatal(err)
	}
	// (0.5+0)/2 and (-0.5+0.25)/2
	want := []int16{8191, -4095}
	if mono.Length() != len(want) {
		t.Fatalf("Length() = %d, want %d", mono.Length(), len(want))
	}
	for i := range want {
		if mono.Samples[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, mono.Samples[i], want[i])
		}
	}

	stereo, err := FromStreamer(src.Streamer(), 8000, 2)
	if err != nil || stereo.Length() != 4 {
		t.Fatalf("FromStreamer(stereo) = %v, %v", stereo, err)
	}

	if _, err := FromStreamer(src.Streamer(), 8000, 3); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("FromStreamer(3 channels) error = %v, want ErrFormatMismatch", err)
	}
}
