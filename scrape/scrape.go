// SPDX-License-Identifier: EPL-2.0

package scrape

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/internal/logging"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/pcm"
	"github.com/ik5/physaudio/utils"
	"github.com/sirupsen/logrus"
)

const (
	// gains at MaxScrapeSpeed, in dB, of the slope and curvature parts
	slopeGainDB = -25
	curveGainDB = -4

	jitterDepth = 0.15
	dcBlockR    = 0.995
)

// Synthesizer renders scrapes as a sequence of grains read off the surface
// profile of a scrape material. Every method is safe for concurrent use;
// calls for the same pair are rendered in the order they lock.
type Synthesizer struct {
	reg        *material.Registry
	sampleRate int
	frame      time.Duration
	master     float64
	maxSpeed   float64
	seed       uint64
	log        logrus.FieldLogger

	mtx     sync.Mutex
	streams map[classify.Pair]*Stream
	gen     uint64

	// per grain scratch
	slopePts, curvePts []float32
	slope, curve       []float32
}

// New returns a Synthesizer reading grains from reg, or material.Default()
// when reg is nil.
func New(reg *material.Registry, opts ...Option) *Synthesizer {
	if reg == nil {
		reg = material.Default()
	}
	s := &Synthesizer{
		reg:        reg,
		sampleRate: DefaultSampleRate,
		frame:      DefaultFrameDuration,
		master:     DefaultMasterAmp,
		maxSpeed:   MaxScrapeSpeed,
		log:        logging.Discard(),
		streams:    make(map[classify.Pair]*Stream),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synthesizer) SampleRate() int              { return s.sampleRate }
func (s *Synthesizer) FrameDuration() time.Duration { return s.frame }

// Begin starts a scrape of pair over a surface of sm. A stream already
// running for pair is ended first. An unknown scrape material is logged and
// replaced by the environment's.
func (s *Synthesizer) Begin(pair classify.Pair, sm material.ScrapeMaterial, opts ...StreamOption) *Stream {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if old, ok := s.streams[pair]; ok {
		s.end(old)
	}

	grain, err := s.reg.ScrapeGrain(sm)
	if err != nil {
		fallback := *material.Environment().ScrapeMaterial
		s.log.WithError(err).WithFields(logrus.Fields{"pair": pair, "material": sm}).
			Warnf("scraping %s instead", fallback)
		sm = fallback
		grain, err = s.reg.ScrapeGrain(sm)
		if err != nil {
			s.log.WithError(err).WithField("pair", pair).Warn("no scrape grain, stream stays silent")
		}
	}

	st := &Stream{
		pair:     pair,
		material: sm,
		grain:    grain,
		amp:      1,
		friction: 1,
		buf:      pcm.Sound{Samples: []int16{}, SampleRate: s.sampleRate, Channels: 1},
	}
	for _, opt := range opts {
		opt(st)
	}
	s.track(st)
	return st
}

// track registers st as the stream of its pair with a new generation.
func (s *Synthesizer) track(st *Stream) {
	s.gen++
	st.reset(s.gen, rand.New(rand.NewPCG(s.seed, pairSeed(st.pair))))
	s.streams[st.pair] = st
}

func pairSeed(p classify.Pair) uint64 {
	seed := uint64(uint32(p.A))<<32 | uint64(uint32(p.B))
	if p.Environment {
		seed = ^seed
	}
	return seed
}

func (s *Synthesizer) tracked(st *Stream) bool {
	cur, ok := s.streams[st.pair]
	return ok && cur == st && cur.gen == st.gen
}

// Continue renders one frame of st moving at speed m/s, appends it to the
// stream and returns it. The number of grains follows the distance
// travelled; the length of each grain is the time it takes to cross one
// grain of surface, so faster scrapes give shorter, higher pitched grains.
// While the speed drops the surface is read backwards.
//
// An untracked stream is logged and restarted as if by Begin, unless a
// newer stream runs for its pair: then st stays ended and the result is
// silent.
func (s *Synthesizer) Continue(st *Stream, speed float64) *pcm.Sound {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.tracked(st) {
		log := s.log.WithError(fmt.Errorf("%w: %s", ErrUntrackedStream, st.pair))
		if cur, ok := s.streams[st.pair]; ok && cur != st {
			log.WithField("generation", cur.gen).Warn("scrape was replaced, ignoring the old stream")
			return pcm.Silence(s.sampleRate, 1)
		}
		log.Warn("continuing scrape as a new stream")
		s.track(st)
	}

	speed = min(max(speed, 0), s.maxSpeed)
	chunk := s.render(st, speed)
	out := pcm.Wrap(chunk, s.sampleRate, 1)
	if err := st.buf.Append(out); err != nil {
		// only reachable if the stream was built by another synthesizer
		s.log.WithError(err).WithField("pair", st.pair).Error("dropping scrape chunk")
	}
	return out
}

func (s *Synthesizer) render(st *Stream, speed float64) []float32 {
	g := st.grain
	if speed <= 0 || g.Len() == 0 || g.DistancePerGrain <= 0 {
		st.lastSpeed = speed
		return s.flushTail(st, nil)
	}

	st.backward = speed < st.lastSpeed
	st.lastSpeed = speed
	st.distance += speed * s.frame.Seconds()
	due := int(math.Floor(st.distance/g.DistancePerGrain)) - st.grains
	if due <= 0 {
		return s.flushTail(st, nil)
	}

	rel := speed / s.maxSpeed
	slopeGain := float32(rel * math.Pow(10, slopeGainDB/20.0))
	curveGain := float32(rel * rel * math.Pow(10, curveGainDB/20.0))
	level := float32(g.Roughness * s.master * st.amp * st.friction)
	drive := float32(g.Drive)

	exact := g.DistancePerGrain / speed * float64(s.sampleRate)
	maxLen := int(MaxGrainTime.Seconds() * float64(s.sampleRate))

	out := make([]float32, 0, due*int(min(exact+1, float64(maxLen))))
	for range due {
		want := exact + st.carry
		n := int(want)
		st.carry = want - float64(n)
		if n < MinGrainSamples || n > maxLen {
			n = min(max(n, MinGrainSamples), maxLen)
			st.carry = 0
		}

		s.readGrain(st, n)
		gain := level * (1 + jitterDepth*float32(2*st.rng.Float64()-1))
		for i := range n {
			x := gain * (slopeGain*s.slope[i] + curveGain*tanh32(drive*s.curve[i]))
			// DC blocker, its state runs across grains and frames
			y := x - st.dcIn + dcBlockR*st.dcOut
			st.dcIn, st.dcOut = x, y
			out = append(out, y)
		}
	}
	st.grains += due

	return s.flushTail(st, out)
}

// readGrain stretches the next PointsPerGrain+1 surface points over n+1
// samples into the scratch buffers and moves the cursor. The extra sample
// is the first of the next grain and is dropped.
func (s *Synthesizer) readGrain(st *Stream, n int) {
	g := st.grain
	pts := g.PointsPerGrain
	size := g.Len()
	step := 1
	if st.backward {
		step = -1
	}

	s.slopePts, s.curvePts = grow(s.slopePts, pts+1), grow(s.curvePts, pts+1)
	for i := range pts + 1 {
		k := wrap(st.cursor+i*step, size)
		s.slopePts[i] = g.Slope[k]
		s.curvePts[i] = g.Curvature[k]
	}
	st.cursor = wrap(st.cursor+pts*step, size)

	s.slope, s.curve = grow(s.slope, n+1), grow(s.curve, n+1)
	utils.Stretch(s.slope, s.slopePts)
	utils.Stretch(s.curve, s.curvePts)
}

// grow returns buf resized to n, reallocating only when it is too small.
func grow(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}

// flushTail runs chunk through the stream's resonance, carrying the part of
// the response that falls past the chunk into the next call.
func (s *Synthesizer) flushTail(st *Stream, chunk []float32) []float32 {
	if st.ir == nil {
		if chunk == nil {
			return []float32{}
		}
		return chunk
	}
	if len(chunk) == 0 {
		return []float32{}
	}

	full := utils.Convolve(chunk, st.ir)
	for i, v := range st.tail {
		if i < len(full) {
			full[i] += v
		} else {
			full = append(full, v)
		}
	}
	st.tail = slices.Clone(full[len(chunk):])
	return full[:len(chunk)]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func tanh32(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// End stops st and drops its buffer. Ending an untracked stream is logged
// and otherwise ignored.
func (s *Synthesizer) End(st *Stream) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.tracked(st) {
		s.log.WithError(fmt.Errorf("%w: %s", ErrUntrackedStream, st.pair)).
			Debug("ending scrape that is not running")
		st.buf.Samples = st.buf.Samples[:0]
		return
	}
	s.end(st)
}

func (s *Synthesizer) end(st *Stream) {
	delete(s.streams, st.pair)
	st.gen = 0
	st.tail = nil
	st.buf.Samples = st.buf.Samples[:0]
}

// Stream returns the running stream of pair.
func (s *Synthesizer) Stream(pair classify.Pair) (*Stream, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	st, ok := s.streams[pair]
	return st, ok
}

// Active is the number of running streams.
func (s *Synthesizer) Active() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return len(s.streams)
}

// Pairs returns the pairs with a running stream, sorted.
func (s *Synthesizer) Pairs() []classify.Pair {
	s.mtx.Lock()
	out := make([]classify.Pair, 0, len(s.streams))
	for p := range s.streams {
		out = append(out, p)
	}
	s.mtx.Unlock()

	slices.SortFunc(out, func(a, b classify.Pair) int {
		return cmp.Compare(a.String(), b.String())
	})
	return out
}

// EndAll ends every running stream and returns how many there were.
func (s *Synthesizer) EndAll() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	n := len(s.streams)
	for _, st := range s.streams {
		s.end(st)
	}
	return n
}
