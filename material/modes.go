// SPDX-License-Identifier: EPL-2.0

package material

import (
	"math"

	"github.com/ik5/physaudio/modal"
)

// signature describes the modes of a material at size 0. Every mode after
// the first is Rolloff dB quieter and decays DecayRatio times faster than
// the one before it.
type signature struct {
	Fundamental float64   // Hz
	Ratios      []float64 // partial frequency / fundamental
	Power       float64   // dB of the first mode
	Rolloff     float64   // dB per partial
	Decay       float64   // ms of the first mode
	DecayRatio  float64
}

var signatures = [numMaterials]signature{
	Ceramic:         {1800, []float64{1, 2.32, 4.25, 6.63, 9.38}, -12, 4, 120, 0.7},
	Glass:           {2400, []float64{1, 2.76, 5.4, 8.93}, -10, 3, 300, 0.75},
	Stone:           {900, []float64{1, 1.72, 2.91, 4.33, 5.9}, -14, 5, 60, 0.65},
	Metal:           {1200, []float64{1, 2.76, 5.4, 8.93, 13.34, 18.64}, -8, 3, 900, 0.8},
	WoodHard:        {650, []float64{1, 2.41, 3.92, 5.7}, -14, 5, 60, 0.6},
	WoodMedium:      {520, []float64{1, 2.41, 3.92, 5.7}, -15, 5, 45, 0.6},
	WoodSoft:        {400, []float64{1, 2.41, 3.92}, -17, 6, 30, 0.6},
	Fabric:          {260, []float64{1, 1.9, 3.1}, -32, 8, 8, 0.5},
	Leather:         {340, []float64{1, 2.1, 3.5}, -28, 7, 12, 0.5},
	PlasticHard:     {900, []float64{1, 2.3, 3.9, 5.6}, -16, 5, 40, 0.6},
	PlasticSoftFoam: {300, []float64{1, 1.8, 2.9}, -34, 8, 6, 0.5},
	Rubber:          {380, []float64{1, 1.7, 2.6}, -26, 7, 15, 0.5},
	Paper:           {1400, []float64{1, 2.2, 3.7, 5.1}, -30, 6, 10, 0.55},
	Cardboard:       {700, []float64{1, 2.1, 3.3}, -26, 6, 14, 0.55},
}

// Per size bucket: frequencies drop by sizeFreqScale, decays grow by
// sizeDecayScale and the onset gains sizePowerStep dB.
const (
	sizeFreqScale  = 0.72
	sizeDecayScale = 1.35
	sizePowerStep  = 1.5
)

func (s signature) modes(size int) modal.ModeSet {
	fscale := math.Pow(sizeFreqScale, float64(size))
	dscale := math.Pow(sizeDecayScale, float64(size))

	ms := make(modal.ModeSet, len(s.Ratios))
	decay := s.Decay * dscale
	for i, ratio := range s.Ratios {
		ms[i] = modal.Mode{
			Frequency:  s.Fundamental * ratio * fscale,
			OnsetPower: s.Power - s.Rolloff*float64(i) + sizePowerStep*float64(size),
			DecayTime:  decay,
		}
		decay *= s.DecayRatio
	}
	return ms
}
