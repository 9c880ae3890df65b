// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/physaudio/pcm"
)

func near(a, b int16) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestRender_Placement(t *testing.T) {
	t.Parallel()

	tl := New(1000)
	click := pcm.WrapPCM([]int16{8192, 8192}, 1000, 1)

	if err := tl.Place(0, click); err != nil {
		t.Fatal(err)
	}
	if err := tl.Place(5*time.Millisecond, click); err != nil {
		t.Fatal(err)
	}
	if tl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tl.Len())
	}
	if tl.Duration() != 7*time.Millisecond {
		t.Errorf("Duration() = %v, want 7ms", tl.Duration())
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{8192, 8192, 0, 0, 0, 8192, 8192}
	if out.Length() != len(want) {
		t.Fatalf("Length() = %d, want %d (%v)", out.Length(), len(want), out.Samples)
	}
	for i := range want {
		if !near(out.Samples[i], want[i]) {
			t.Errorf("sample %d = %d, want %d", i, out.Samples[i], want[i])
		}
	}
}

func TestRender_OverlapSumsAndClamps(t *testing.T) {
	t.Parallel()

	tl := New(1000)
	a := pcm.WrapPCM([]int16{8192, 30000, 0}, 1000, 1)
	b := pcm.WrapPCM([]int16{8192, 30000}, 1000, 1)
	_ = tl.Place(0, a)
	_ = tl.Place(0, b)

	out, err := tl.Render()
	if err != nil {
		t.Fatal(err)
	}
	if out.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", out.Length())
	}
	if !near(out.Samples[0], 16383) {
		t.Errorf("sum = %d, want 16383", out.Samples[0])
	}
	if out.Samples[1] != 32767 {
		t.Errorf("overflowing sum = %d, want clamped 32767", out.Samples[1])
	}
}

func TestPlace_Errors(t *testing.T) {
	t.Parallel()

	tl := New(44100)
	if err := tl.Place(-time.Second, pcm.WrapPCM([]int16{1}, 44100, 1)); !errors.Is(err, ErrNegativeTime) {
		t.Errorf("Place(-1s) error = %v", err)
	}
	if err := tl.Place(0, pcm.WrapPCM([]int16{1}, 8000, 1)); !errors.Is(err, pcm.ErrFormatMismatch) {
		t.Errorf("Place(8 kHz) error = %v", err)
	}
	if err := tl.Place(0, pcm.Silence(8000, 1)); err != nil {
		t.Errorf("Place(silence) error = %v", err)
	}
	if err := tl.Place(0, nil); err != nil {
		t.Errorf("Place(nil) error = %v", err)
	}
	if tl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tl.Len())
	}
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	tl := New(22050)
	out, err := tl.Render()
	if err != nil || out.Length() != 0 || out.SampleRate != 22050 {
		t.Errorf("Render() = %+v, %v", out, err)
	}

	_ = tl.Place(time.Second, pcm.WrapPCM([]int16{5}, 22050, 1))
	tl.Reset()
	if tl.Len() != 0 || tl.Duration() != 0 {
		t.Error("Reset() kept clips")
	}
}

func TestPlace_CopiesSound(t *testing.T) {
	t.Parallel()

	tl := New(1000)
	s := pcm.WrapPCM([]int16{16384}, 1000, 1)
	_ = tl.Place(0, s)
	s.Samples[0] = 0

	out, _ := tl.Render()
	if !near(out.Samples[0], 16383) {
		t.Errorf("placed clip changed with its source: %d", out.Samples[0])
	}
}
