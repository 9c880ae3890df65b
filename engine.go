// SPDX-License-Identifier: EPL-2.0

package physaudio

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/config"
	"github.com/ik5/physaudio/impact"
	"github.com/ik5/physaudio/internal/logging"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/modal"
	"github.com/ik5/physaudio/pcm"
	"github.com/ik5/physaudio/scrape"
	"github.com/sirupsen/logrus"
)

// ResonanceTime is how much of the scraping object's own ring is used to
// color its scrape.
const ResonanceTime = 10 * time.Millisecond

// EventReport is what the engine made of one contact.
type EventReport struct {
	Pair      classify.Pair
	Kind      classify.Kind
	Intensity float64
	Changed   bool
	// Sound is nil when the contact made no sound this frame.
	Sound *pcm.Sound
}

// FrameReport lists the outcome of one Step.
type FrameReport struct {
	Frame  int
	Time   time.Duration // simulation time at the start of the frame
	Events []EventReport
	// Ended holds the pairs whose scrape stopped this frame.
	Ended []classify.Pair
}

// Engine turns the contact events of successive simulation frames into
// sound. It is safe to call from several goroutines, but frames are
// processed one at a time.
type Engine struct {
	cfg config.Config
	reg *material.Registry
	log logrus.FieldLogger

	tracker *classify.Tracker
	impacts *impact.Synthesizer
	scrapes *scrape.Synthesizer

	mtx        sync.Mutex
	profiles   map[int]material.Profile
	warned     map[int]bool
	streams    map[classify.Pair]*scrape.Stream
	lastImpact map[int]time.Duration
	impactN    int64
	frame      int
	closed     bool
}

// New returns an engine for cfg. The profiles given with WithProfiles and
// cfg itself are validated.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		log:        logging.Discard(),
		profiles:   make(map[int]material.Profile),
		warned:     make(map[int]bool),
		streams:    make(map[classify.Pair]*scrape.Stream),
		lastImpact: make(map[int]time.Duration),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reg == nil {
		e.reg = material.Default()
	}
	for id, p := range e.profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("engine: object %d: %w", id, err)
		}
	}

	e.tracker = classify.NewTracker(cfg.Thresholds)
	e.impacts = impact.New(e.reg,
		impact.WithSampleRate(cfg.SampleRate),
		impact.WithMasterAmp(cfg.MasterAmp),
		impact.WithEnvironment(cfg.Environment),
		impact.WithReferenceSpeed(cfg.ReferenceSpeed),
		impact.WithMaxIntensityGain(cfg.MaxIntensityGain),
		impact.WithPreventDistortion(cfg.PreventDistortion),
		impact.WithVariation(cfg.Variation),
		impact.WithLogger(e.log.WithField("component", "impact")),
	)
	e.scrapes = scrape.New(e.reg,
		scrape.WithSampleRate(cfg.SampleRate),
		scrape.WithFrameDuration(cfg.FrameDuration.Std()),
		scrape.WithMasterAmp(cfg.MasterAmp),
		scrape.WithMaxSpeed(cfg.MaxScrapeSpeed),
		scrape.WithSeed(cfg.Seed),
		scrape.WithLogger(e.log.WithField("component", "scrape")),
	)
	return e, nil
}

func (e *Engine) Config() config.Config { return e.cfg }

// SetProfile sets the audio data of object id.
func (e *Engine) SetProfile(id int, p material.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("object %d: %w", id, err)
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.profiles[id] = p
	delete(e.warned, id)
	return nil
}

// Profile returns the profile set for id.
func (e *Engine) Profile(id int) (material.Profile, bool) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	p, ok := e.profiles[id]
	return p, ok
}

// ActiveScrapes returns the pairs currently scraping.
func (e *Engine) ActiveScrapes() []classify.Pair {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return sortedPairs(e.streams)
}

// Step processes the contacts of one frame and appends every sound they
// make to out, which may be nil. Pairs that were in contact in an earlier
// frame and are missing from events have lost contact: their scrape ends
// and their history is dropped.
func (e *Engine) Step(events []classify.ContactEvent, out *pcm.Sound) FrameReport {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	now := time.Duration(e.frame) * e.cfg.FrameDuration.Std()
	report := FrameReport{Frame: e.frame, Time: now}
	if e.closed {
		e.log.WithField("frame", e.frame).Warn("step on a closed engine")
		return report
	}
	e.frame++

	seen := make(map[classify.Pair]bool, len(events))
	for _, ev := range events {
		rep := e.handle(ev, now)
		seen[rep.Pair] = true
		if rep.Sound != nil && out != nil {
			if err := out.Append(rep.Sound); err != nil {
				e.log.WithError(err).WithField("pair", rep.Pair).Error("dropping sound")
			}
		}
		if rep.Kind != classify.Scrape {
			if e.endScrape(rep.Pair) {
				report.Ended = append(report.Ended, rep.Pair)
			}
		}
		report.Events = append(report.Events, rep)
	}

	for _, p := range sortedPairs(e.streams) {
		if !seen[p] && e.endScrape(p) {
			report.Ended = append(report.Ended, p)
		}
	}
	for _, p := range e.tracker.Pairs() {
		if !seen[p] {
			e.log.WithField("pair", p).Debug("contact lost")
			e.tracker.Forget(p)
		}
	}
	return report
}

func (e *Engine) handle(ev classify.ContactEvent, now time.Duration) EventReport {
	primary := e.profile(ev.PrimaryID)
	secondary := e.cfg.Environment
	if ev.HasSecondary {
		secondary = e.profile(ev.SecondaryID)
	}
	if ev.PrimaryMass <= 0 {
		ev.PrimaryMass = primary.Mass
	}
	if ev.HasSecondary && ev.SecondaryMass <= 0 {
		ev.SecondaryMass = secondary.Mass
	}

	res := e.tracker.Classify(ev)
	rep := EventReport{
		Pair:      ev.Pair(),
		Kind:      res.Kind,
		Intensity: res.Intensity,
		Changed:   res.Changed,
	}
	log := e.log.WithFields(logrus.Fields{"pair": rep.Pair, "kind": res.Kind})

	// The lighter body is the one that rings and slides.
	moverID := ev.PrimaryID
	if ev.HasSecondary && secondary.Mass < primary.Mass {
		primary, secondary = secondary, primary
		moverID = ev.SecondaryID
	}

	switch res.Kind {
	case classify.Impact:
		if !res.Changed {
			break
		}
		if last, ok := e.lastImpact[moverID]; ok && now-last < e.cfg.MinTimeBetweenImpacts.Std() {
			log.WithField("since", now-last).Debug("impact too soon, dropped")
			break
		}
		e.lastImpact[moverID] = now

		var seed *int64
		if e.cfg.Variation {
			s := int64(e.cfg.Seed) + e.impactN
			seed = &s
		}
		e.impactN++

		var other *material.Profile
		if ev.HasSecondary {
			other = &secondary
		}
		rep.Sound = e.impacts.Synthesize(primary, other, res.Intensity, seed)
		log.WithField("intensity", res.Intensity).Debug("impact")

	case classify.Scrape:
		st, ok := e.streams[rep.Pair]
		if !ok {
			st = e.beginScrape(rep.Pair, primary, secondary)
			log.WithField("material", st.Material()).Debug("scrape started")
		}
		rep.Sound = e.scrapes.Continue(st, res.Intensity)
	}
	if rep.Sound.IsSilent() {
		rep.Sound = nil
	}
	return rep
}

// profile returns the profile of object id, or the default object when id
// has no usable one. Each object is only warned about once.
func (e *Engine) profile(id int) material.Profile {
	p, ok := e.profiles[id]
	switch {
	case !ok:
		if !e.warned[id] {
			e.log.WithField("object", id).Warn("no profile, using the default object")
			e.warned[id] = true
		}
		return e.cfg.DefaultObject
	case !e.reg.Has(p.Material, p.Size):
		if !e.warned[id] {
			e.log.WithFields(logrus.Fields{"object": id, "material": p.Material, "size": p.Size}).
				Warn("material not registered, using the default object")
			e.warned[id] = true
		}
		d := e.cfg.DefaultObject
		if p.Mass > 0 {
			d.Mass = p.Mass
		}
		return d
	}
	return p
}

// beginScrape starts the stream of mover sliding over surface.
func (e *Engine) beginScrape(pair classify.Pair, mover, surface material.Profile) *scrape.Stream {
	sm := *e.cfg.Environment.ScrapeMaterial
	switch {
	case surface.ScrapeMaterial != nil:
		sm = *surface.ScrapeMaterial
	case mover.ScrapeMaterial != nil:
		sm = *mover.ScrapeMaterial
	}

	opts := []scrape.StreamOption{
		scrape.WithAmp(mover.Amp),
		scrape.WithFriction(contactFriction(mover.Material, surface.Material)),
	}
	if modes, err := e.reg.Modes(mover.Material, mover.Size); err == nil {
		n := int(ResonanceTime.Seconds() * float64(e.cfg.SampleRate))
		opts = append(opts, scrape.WithResonance(modal.SynthesizeHead(modes, mover.Resonance, e.cfg.SampleRate, n)))
	}

	st := e.scrapes.Begin(pair, sm, opts...)
	e.streams[pair] = st
	return st
}

// contactFriction is the mean dynamic friction of a and b, or of the one
// known material, or 0 when neither is known.
func contactFriction(a, b material.Material) float64 {
	var sum float64
	n := 0
	for _, m := range []material.Material{a, b} {
		if info, ok := material.InfoOf(m); ok {
			sum += info.DynamicFriction
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (e *Engine) endScrape(p classify.Pair) bool {
	st, ok := e.streams[p]
	if !ok {
		return false
	}
	e.scrapes.End(st)
	delete(e.streams, p)
	e.log.WithField("pair", p).Debug("scrape ended")
	return true
}

// Close ends every scrape. Steps after Close produce nothing.
func (e *Engine) Close() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.closed = true
	n := e.scrapes.EndAll()
	clear(e.streams)
	e.log.WithField("scrapes", n).Debug("engine closed")
	return nil
}

func sortedPairs(m map[classify.Pair]*scrape.Stream) []classify.Pair {
	out := make([]classify.Pair, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b classify.Pair) int {
		return cmp.Or(
			cmp.Compare(a.A, b.A),
			cmp.Compare(a.B, b.B),
			compareBool(a.Environment, b.Environment),
		)
	})
	return out
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
