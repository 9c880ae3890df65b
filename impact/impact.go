// SPDX-License-Identifier: EPL-2.0

package impact

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/physaudio/internal/logging"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/modal"
	"github.com/ik5/physaudio/pcm"
	"github.com/ik5/physaudio/utils"
	"github.com/sirupsen/logrus"
)

const (
	contactTimePerKg = 0.001 // s
	maxContactTime   = 0.002 // s
	maxGainNoClip    = 0.99

	seedStream = 0x1a7c
)

// Synthesizer renders impact sounds. It holds no per impact state and is
// safe for concurrent use.
type Synthesizer struct {
	reg               *material.Registry
	sampleRate        int
	master            float64
	env               material.Profile
	refSpeed          float64
	maxGain           float64
	preventDistortion bool
	variation         bool
	log               logrus.FieldLogger
}

// New returns a Synthesizer reading modes from reg, or material.Default()
// when reg is nil.
func New(reg *material.Registry, opts ...Option) *Synthesizer {
	if reg == nil {
		reg = material.Default()
	}
	s := &Synthesizer{
		reg:               reg,
		sampleRate:        DefaultSampleRate,
		master:            DefaultMasterAmp,
		env:               material.Environment(),
		refSpeed:          DefaultReferenceSpeed,
		maxGain:           DefaultMaxIntensityGain,
		preventDistortion: true,
		log:               logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synthesizer) SampleRate() int { return s.sampleRate }

// Environment is the profile struck when an impact has no secondary object.
func (s *Synthesizer) Environment() material.Profile { return s.env }

// Gain is the peak amplitude of an impact of an object with the given amp
// at intensity.
func (s *Synthesizer) Gain(amp, intensity float64) float64 {
	g := s.master * amp * min(intensity/s.refSpeed, s.maxGain)
	if s.preventDistortion && g > maxGainNoClip {
		g = maxGainNoClip
	}
	return max(g, 0)
}

// Synthesize renders primary striking secondary, or the environment when
// secondary is nil, at intensity m/s.
//
// The modes of both objects are rendered with their own resonance and
// summed, the secondary offset by its amp relative to the primary's. The
// sum is shaped by a half-sine contact force lasting 1 ms per kg of the
// lighter object, up to 2 ms, normalized and scaled by Gain.
//
// Missing modes for the primary give silence; missing modes for the
// secondary give the primary alone. Both are logged. The result only
// depends on the arguments: seed is used to vary the modes when variation
// is enabled and ignored otherwise.
func (s *Synthesizer) Synthesize(primary material.Profile, secondary *material.Profile, intensity float64, seed *int64) *pcm.Sound {
	log := s.log.WithFields(logrus.Fields{"material": primary.Material, "size": primary.Size})

	gain := s.Gain(primary.Amp, intensity)
	if gain <= 0 {
		log.WithField("intensity", intensity).Debug("impact too quiet, skipping")
		return pcm.Silence(s.sampleRate, 1)
	}

	modes, err := s.reg.Modes(primary.Material, primary.Size)
	if err != nil {
		log.WithError(err).Warn("no modes for impact primary")
		return pcm.Silence(s.sampleRate, 1)
	}

	other := s.env
	if secondary != nil {
		other = *secondary
	}

	var rng *rand.Rand
	if s.variation && seed != nil {
		rng = rand.New(rand.NewPCG(uint64(*seed), seedStream))
		modes = modes.Vary(rng)
	}

	wave := modal.Synthesize(modes, primary.Resonance, s.sampleRate)
	if other.Amp > 0 {
		wave = s.addSecondary(wave, primary, other, rng, log)
	}

	wave = utils.Convolve(wave, ContactForce(min(primary.Mass, other.Mass), s.sampleRate))
	peak := utils.Peak(wave)
	if peak == 0 {
		log.Debug("impact rendered no signal")
		return pcm.Silence(s.sampleRate, 1)
	}
	utils.Scale(wave, float32(gain)/peak)

	return pcm.Wrap(wave, s.sampleRate, 1)
}

func (s *Synthesizer) addSecondary(wave []float32, primary, other material.Profile, rng *rand.Rand, log logrus.FieldLogger) []float32 {
	modes, err := s.reg.Modes(other.Material, other.Size)
	if err != nil {
		log.WithError(err).
			WithFields(logrus.Fields{"secondary": other.Material, "secondary_size": other.Size}).
			Warn("no modes for impact secondary, using the primary alone")
		return wave
	}
	if rng != nil {
		modes = modes.Vary(rng)
	}
	modes = modes.OffsetPower(20 * math.Log10(other.Amp/primary.Amp))
	return modal.Add(wave, modal.Synthesize(modes, other.Resonance, s.sampleRate))
}

// ContactForce is the force profile of a contact with an object of mass
// kg: half a sine period lasting 1 ms per kg, at most 2 ms. Very light
// objects get a single sample impulse.
func ContactForce(mass float64, sampleRate int) []float32 {
	dur := min(contactTimePerKg*max(mass, 0), maxContactTime)
	n := max(int(math.Ceil(dur*float64(sampleRate))), 1)

	force := make([]float32, n)
	for i := range force {
		force[i] = float32(math.Sin(math.Pi * float64(i+1) / float64(n+1)))
	}
	return force
}
