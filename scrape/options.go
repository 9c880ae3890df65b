// SPDX-License-Identifier: EPL-2.0

package scrape

import (
	"math"
	"slices"
	"time"

	"github.com/ik5/physaudio/internal/logging"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate    = 44100
	DefaultFrameDuration = 100 * time.Millisecond
	DefaultMasterAmp     = 0.5
	// MaxScrapeSpeed is the speed, in m/s, that plays at full level.
	// Faster scrapes are clamped to it.
	MaxScrapeSpeed = 5.0

	MinGrainSamples = 8
	MaxGrainTime    = 100 * time.Millisecond

	// ReferenceFriction is the friction coefficient that plays at the
	// material's own level. The gain of other coefficients is clamped to
	// [MinFrictionGain, MaxFrictionGain].
	ReferenceFriction = 0.4
	MinFrictionGain   = 0.5
	MaxFrictionGain   = 2.0
)

// Option configures a Synthesizer.
type Option func(*Synthesizer)

func WithSampleRate(rate int) Option {
	return func(s *Synthesizer) {
		if rate > 0 {
			s.sampleRate = rate
		}
	}
}

// WithFrameDuration sets the simulation time covered by one Continue call.
func WithFrameDuration(d time.Duration) Option {
	return func(s *Synthesizer) {
		if d > 0 {
			s.frame = d
		}
	}
}

func WithMasterAmp(amp float64) Option {
	return func(s *Synthesizer) { s.master = max(amp, 0) }
}

// WithMaxSpeed replaces MaxScrapeSpeed.
func WithMaxSpeed(v float64) Option {
	return func(s *Synthesizer) {
		if v > 0 {
			s.maxSpeed = v
		}
	}
}

// WithSeed sets the seed the per-stream gain jitter is derived from.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) { s.seed = seed }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Synthesizer) { s.log = logging.OrDiscard(l) }
}

// StreamOption configures one stream at Begin.
type StreamOption func(*Stream)

// WithAmp scales the stream, usually by the scraping object's amp.
func WithAmp(amp float64) StreamOption {
	return func(st *Stream) { st.amp = max(amp, 0) }
}

// WithFriction scales the stream by mu / ReferenceFriction, so grippy
// contacts scrape louder than slippery ones. mu <= 0 leaves the level as is.
func WithFriction(mu float64) StreamOption {
	return func(st *Stream) {
		if mu <= 0 {
			st.friction = 1
			return
		}
		st.friction = min(max(mu/ReferenceFriction, MinFrictionGain), MaxFrictionGain)
	}
}

// WithResonance filters the stream through the impulse response ir, so the
// scrape rings like the objects involved. ir is scaled to unit energy.
func WithResonance(ir []float32) StreamOption {
	return func(st *Stream) {
		var energy float64
		for _, v := range ir {
			energy += float64(v) * float64(v)
		}
		if energy == 0 {
			st.ir = nil
			return
		}
		st.ir = slices.Clone(ir)
		inv := float32(1 / math.Sqrt(energy))
		for i := range st.ir {
			st.ir[i] *= inv
		}
	}
}
