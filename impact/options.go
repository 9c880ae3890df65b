// SPDX-License-Identifier: EPL-2.0

package impact

import (
	"github.com/ik5/physaudio/internal/logging"
	"github.com/ik5/physaudio/material"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate       = 44100
	DefaultMasterAmp        = 0.5
	DefaultReferenceSpeed   = 1 // m/s
	DefaultMaxIntensityGain = 2
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

// WithMasterAmp sets the gain applied to every impact.
func WithMasterAmp(amp float64) Option {
	return func(s *Synthesizer) { s.master = max(amp, 0) }
}

// WithEnvironment sets the profile struck by environment collisions.
func WithEnvironment(p material.Profile) Option {
	return func(s *Synthesizer) { s.env = p }
}

// WithReferenceSpeed sets the intensity that plays at full object amp.
func WithReferenceSpeed(v float64) Option {
	return func(s *Synthesizer) {
		if v > 0 {
			s.refSpeed = v
		}
	}
}

// WithMaxIntensityGain caps intensity/reference speed.
func WithMaxIntensityGain(g float64) Option {
	return func(s *Synthesizer) {
		if g > 0 {
			s.maxGain = g
		}
	}
}

// WithPreventDistortion clamps the final gain to 0.99.
func WithPreventDistortion(on bool) Option {
	return func(s *Synthesizer) { s.preventDistortion = on }
}

// WithVariation jitters the modes of every impact that is given a seed, so
// repeated hits do not sound identical.
func WithVariation(on bool) Option {
	return func(s *Synthesizer) { s.variation = on }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Synthesizer) { s.log = logging.OrDiscard(l) }
}
