// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/ik5/physaudio/pcm"
)

var ErrNegativeTime = errors.New("clip placed before the start of the timeline")

type clip struct {
	at    int // frame offset
	sound *pcm.Sound
}

// Timeline collects sounds at the simulation time they were made and mixes
// them into one recording.
type Timeline struct {
	rate beep.SampleRate

	mtx    sync.Mutex
	clips  []clip
	frames int // end of the last clip
}

func New(sampleRate int) *Timeline {
	return &Timeline{rate: beep.SampleRate(sampleRate)}
}

func (t *Timeline) SampleRate() int { return int(t.rate) }

// Place puts s at time at. Silent sounds are accepted and ignored. s must
// have the timeline's sample rate; any channel count is mixed to mono.
func (t *Timeline) Place(at time.Duration, s *pcm.Sound) error {
	if at < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTime, at)
	}
	if s.IsSilent() {
		return nil
	}
	if s.SampleRate != int(t.rate) {
		return fmt.Errorf("%w: %d Hz clip on a %d Hz timeline", pcm.ErrFormatMismatch, s.SampleRate, int(t.rate))
	}

	c := clip{at: t.rate.N(at), sound: s.Clone()}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clips = append(t.clips, c)
	t.frames = max(t.frames, c.at+s.Frames())
	return nil
}

// Len is the number of clips placed.
func (t *Timeline) Len() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return len(t.clips)
}

// Duration is the time at which the last clip ends.
func (t *Timeline) Duration() time.Duration {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.rate.D(t.frames)
}

// Render mixes every clip into a mono sound. Overlapping clips are summed
// and clamped.
func (t *Timeline) Render() (*pcm.Sound, error) {
	t.mtx.Lock()
	streamers := make([]beep.Streamer, 0, len(t.clips))
	for _, c := range t.clips {
		streamers = append(streamers, beep.Seq(beep.Silence(c.at), c.sound.Streamer()))
	}
	frames := t.frames
	t.mtx.Unlock()

	if len(streamers) == 0 {
		return pcm.Silence(int(t.rate), 1), nil
	}

	mixed := beep.Take(frames, beep.Mix(streamers...))
	out, err := pcm.FromStreamer(mixed, int(t.rate), 1)
	if err != nil {
		return nil, fmt.Errorf("rendering timeline: %w", err)
	}
	return out, nil
}

// Reset drops every clip.
func (t *Timeline) Reset() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clips = nil
	t.frames = 0
}
