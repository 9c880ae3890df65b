// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/physaudio/internal/audiotest"
)

func TestCollectMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 1600, 0.25)
	got, err := CollectMono(src, 8000, 512)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if math.Abs(float64(len(got)-800)) > 3 {
		t.Errorf("len = %d, want about 800", len(got))
	}
	for i, v := range got {
		if math.Abs(float64(v)-0.25) > 1e-5 {
			t.Fatalf("got[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestCollectMono_SameRateIsExact(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.2, 0.3, -0.4, 0.5}
	src, _ := NewBufferSource(data, 8000, 1)

	got, err := CollectMono(src, 8000, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(data) {
		t.Fatalf("len = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], data[i])
		}
	}
}

func TestCollectMono_InvalidArgs(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	if _, err := CollectMono(src, 0, 64); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("CollectMono(rate 0) error = %v, want ErrInvalidFormat", err)
	}
	if _, err := CollectMono(src, 8000, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("CollectMono(buffer 0) error = %v, want ErrInvalidFormat", err)
	}
}
