// SPDX-License-Identifier: EPL-2.0

package scrape

import (
	"math/rand/v2"

	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/pcm"
)

// Stream is the state of one ongoing scrape between a pair of bodies. It
// is created by Begin and only changed by the Synthesizer that made it.
type Stream struct {
	pair     classify.Pair
	material material.ScrapeMaterial
	grain    material.Grain
	amp      float64
	friction float64 // level gain of the contact's friction
	gen      uint64
	rng      *rand.Rand

	lastSpeed float64
	distance  float64 // meters
	grains    int     // grains rendered so far
	cursor    int     // surface point of the next grain
	backward  bool
	carry     float64 // fractional samples owed to the next grain

	dcIn, dcOut float32

	ir   []float32
	tail []float32

	buf pcm.Sound
}

func (st *Stream) Pair() classify.Pair               { return st.pair }
func (st *Stream) Material() material.ScrapeMaterial { return st.material }
func (st *Stream) Generation() uint64                { return st.gen }
func (st *Stream) LastSpeed() float64                { return st.lastSpeed }
func (st *Stream) Distance() float64                 { return st.distance }
func (st *Stream) Grains() int                       { return st.grains }
func (st *Stream) Cursor() int                       { return st.cursor }
func (st *Stream) Backward() bool                    { return st.backward }

// Len is the number of samples rendered since the stream began.
func (st *Stream) Len() int { return st.buf.Length() }

// Sound returns a copy of everything rendered since the stream began.
func (st *Stream) Sound() *pcm.Sound { return st.buf.Clone() }

// reset puts st back to the state Begin leaves a stream in.
func (st *Stream) reset(gen uint64, rng *rand.Rand) {
	st.gen = gen
	st.rng = rng
	st.lastSpeed = 0
	st.distance = 0
	st.grains = 0
	st.cursor = 0
	st.backward = false
	st.carry = 0
	st.dcIn, st.dcOut = 0, 0
	st.tail = nil
	st.buf.Samples = st.buf.Samples[:0]
}
