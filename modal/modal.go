// SPDX-License-Identifier: EPL-2.0

package modal

import (
	"math"
	"math/rand/v2"
)

const (
	// ReferenceFloorDB is the level, relative to full scale, that every mode
	// decays to before it is cut. A mode's length is the time it takes to fall
	// ReferenceFloorDB+OnsetPower decibels.
	ReferenceFloorDB = 80.0

	// MinResonance replaces non-positive resonance values.
	MinResonance = 1e-3
)

// Mode is one damped sinusoid of a vibrating object.
type Mode struct {
	Frequency  float64 // Hz
	OnsetPower float64 // dB relative to full scale, usually negative
	DecayTime  float64 // ms to decay 60 dB at resonance 1
}

// ModeSet is the ordered list of modes for a material at a size.
type ModeSet []Mode

// Length is the number of samples the mode lasts for at sampleRate.
func (m Mode) Length(sampleRate int) int {
	hdb := ReferenceFloorDB + m.OnsetPower
	if hdb <= 0 || m.DecayTime <= 0 || sampleRate <= 0 {
		return 0
	}
	ms := m.DecayTime * hdb / 60
	return int(math.Ceil(ms / 1000 * float64(sampleRate)))
}

// Amplitude is the linear onset amplitude, 10^(OnsetPower/20).
func (m Mode) Amplitude() float64 {
	return math.Pow(10, m.OnsetPower/20)
}

// decayStep is the per-sample envelope multiplier: 60 dB per
// DecayTime*resonance milliseconds.
func (m Mode) decayStep(resonance float64, sampleRate int) float64 {
	if resonance <= 0 {
		resonance = MinResonance
	}
	tau := m.DecayTime * resonance / 1000
	return math.Pow(10, -(60/(tau*float64(sampleRate)))/20)
}

// DecayEnvelope returns the mode's amplitude envelope, starting at 1.
// Every sample is <= the one before it.
func DecayEnvelope(m Mode, resonance float64, sampleRate int) []float32 {
	n := m.Length(sampleRate)
	out := make([]float32, n)
	step := m.decayStep(resonance, sampleRate)
	env := 1.0
	for i := range out {
		out[i] = float32(env)
		env *= step
	}
	return out
}

// render accumulates the first n samples of the mode into dst.
func (m Mode) render(dst []float32, n int, resonance float64, sampleRate int) {
	amp := m.Amplitude()
	step := m.decayStep(resonance, sampleRate)
	w := 2 * math.Pi * m.Frequency / float64(sampleRate)
	env := 1.0
	for i := range n {
		dst[i] += float32(math.Cos(w*float64(i)) * amp * env)
		env *= step
	}
}

// Synthesize renders every mode in ms and sums them. The result is as long
// as the longest mode; shorter modes only contribute to its head.
// An empty set gives an empty slice.
func Synthesize(ms ModeSet, resonance float64, sampleRate int) []float32 {
	longest := 0
	for _, m := range ms {
		longest = max(longest, m.Length(sampleRate))
	}
	out := make([]float32, longest)
	for _, m := range ms {
		m.render(out, m.Length(sampleRate), resonance, sampleRate)
	}
	return out
}

// SynthesizeHead renders the first n samples of Synthesize, zero padded
// when the modes are shorter.
func SynthesizeHead(ms ModeSet, resonance float64, sampleRate, n int) []float32 {
	out := make([]float32, max(n, 0))
	for _, m := range ms {
		m.render(out, min(len(out), m.Length(sampleRate)), resonance, sampleRate)
	}
	return out
}

// Add sums a and b into a new slice as long as the longer of the two.
// The tail of the longer input is kept as is.
func Add(a, b []float32) []float32 {
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make([]float32, len(a))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

// Lowest returns the lowest mode frequency, 0 for an empty set.
func (ms ModeSet) Lowest() float64 {
	lowest := 0.0
	for i, m := range ms {
		if i == 0 || m.Frequency < lowest {
			lowest = m.Frequency
		}
	}
	return lowest
}

// Duration is the length in samples of Synthesize(ms, _, sampleRate).
func (ms ModeSet) Duration(sampleRate int) int {
	n := 0
	for _, m := range ms {
		n = max(n, m.Length(sampleRate))
	}
	return n
}

// OffsetPower returns a copy of ms with db added to every onset power.
func (ms ModeSet) OffsetPower(db float64) ModeSet {
	out := make(ModeSet, len(ms))
	for i, m := range ms {
		m.OnsetPower += db
		out[i] = m
	}
	return out
}

// Vary returns a copy of ms with every mode jittered by rng: frequency and
// decay by a tenth of their value, power by 10 dB (one standard deviation
// each). Frequencies stay >= 20 Hz and decays >= 1 ms.
func (ms ModeSet) Vary(rng *rand.Rand) ModeSet {
	out := make(ModeSet, len(ms))
	for i, m := range ms {
		m.Frequency = max(20, m.Frequency+rng.NormFloat64()*m.Frequency/10)
		m.OnsetPower += rng.NormFloat64() * 10
		m.DecayTime = max(1, m.DecayTime+rng.NormFloat64()*m.DecayTime/10)
		out[i] = m
	}
	return out
}
