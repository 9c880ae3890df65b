// SPDX-License-Identifier: EPL-2.0

package physaudio

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/config"
	"github.com/ik5/physaudio/impact"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/modal"
	"github.com/ik5/physaudio/pcm"
	"github.com/ik5/physaudio/scrape"
	"github.com/ik5/physaudio/vmath"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const (
	cupID   = 1
	tableID = 2
)

func profiles() map[int]material.Profile {
	return map[int]material.Profile{
		cupID: {Material: material.Ceramic, Size: 1, Amp: 0.4, Resonance: 0.6, Mass: 0.3},
		tableID: material.Profile{
			Material: material.WoodHard, Size: 4, Amp: 0.5, Resonance: 0.2, Mass: 20,
		}.WithScrape(material.ScrapeWood),
	}
}

func newEngine(t testing.TB, cfg config.Config, opts ...Option) *Engine {
	t.Helper()

	e, err := New(cfg, append([]Option{WithProfiles(profiles())}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func drop(id int) classify.ContactEvent {
	return classify.ContactEvent{
		PrimaryID:        id,
		RelativeVelocity: vmath.Vec3{Y: -2},
		ContactNormals:   []vmath.Vec3{{Y: 1}},
		Area:             0.01,
	}
}

func slide(a, b int) classify.ContactEvent {
	return classify.ContactEvent{
		PrimaryID:        a,
		SecondaryID:      b,
		HasSecondary:     true,
		RelativeVelocity: vmath.Vec3{X: 1},
		ContactNormals:   []vmath.Vec3{{Y: 1}},
		Area:             0.01,
	}
}

func lost(ev classify.ContactEvent) classify.ContactEvent {
	ev.Area = 0
	return ev
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.SampleRate = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New(rate 0) error = %v, want ErrInvalidConfig", err)
	}

	bad := map[int]material.Profile{7: {Material: material.Glass, Size: 9}}
	if _, err := New(config.Default(), WithProfiles(bad)); !errors.Is(err, material.ErrInvalidProfile) {
		t.Errorf("New(bad profile) error = %v, want ErrInvalidProfile", err)
	}
}

func TestSetProfile(t *testing.T) {
	t.Parallel()

	e := newEngine(t, config.Default())

	glass := material.Profile{Material: material.Glass, Size: 0, Amp: 0.3, Resonance: 0.9, Mass: 0.1}
	if err := e.SetProfile(5, glass); err != nil {
		t.Fatalf("SetProfile() error = %v", err)
	}
	got, ok := e.Profile(5)
	if !ok || got != glass {
		t.Errorf("Profile(5) = %+v, %v, want %+v", got, ok, glass)
	}
	if _, ok := e.Profile(6); ok {
		t.Error("Profile(6) found, want missing")
	}

	glass.Amp = 2
	if err := e.SetProfile(5, glass); !errors.Is(err, material.ErrInvalidProfile) {
		t.Errorf("SetProfile(amp 2) error = %v, want ErrInvalidProfile", err)
	}
}

func TestStep_Impact(t *testing.T) {
	t.Parallel()

	e := newEngine(t, config.Default())

	var out pcm.Sound
	r := e.Step([]classify.ContactEvent{drop(cupID)}, &out)

	if r.Frame != 0 || r.Time != 0 {
		t.Errorf("report frame %d at %v, want 0 at 0", r.Frame, r.Time)
	}
	if len(r.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(r.Events))
	}
	ev := r.Events[0]
	if ev.Kind != classify.Impact || !ev.Changed {
		t.Fatalf("event = %v changed %v, want changed impact", ev.Kind, ev.Changed)
	}
	if ev.Pair != classify.EnvironmentPair(cupID) {
		t.Errorf("Pair = %v, want %v", ev.Pair, classify.EnvironmentPair(cupID))
	}
	if ev.Sound == nil {
		t.Fatal("impact made no sound")
	}
	if out.Length() != ev.Sound.Length() || out.SampleRate != 44100 || out.Channels != 1 {
		t.Errorf("out = %d samples %d Hz %d ch, want %d samples 44100 Hz mono",
			out.Length(), out.SampleRate, out.Channels, ev.Sound.Length())
	}

	// Still an impact next frame, but not a new one.
	r = e.Step([]classify.ContactEvent{drop(cupID)}, &out)
	if ev := r.Events[0]; ev.Kind != classify.Impact || ev.Changed || ev.Sound != nil {
		t.Errorf("second frame = %v changed %v sound %v, want silent unchanged impact",
			ev.Kind, ev.Changed, ev.Sound != nil)
	}
	if r.Time != 100*time.Millisecond {
		t.Errorf("second frame time = %v, want 100ms", r.Time)
	}
}

func TestStep_ImpactRateLimit(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.FrameDuration = config.Duration(10 * time.Millisecond)
	cfg.MinTimeBetweenImpacts = config.Duration(50 * time.Millisecond)
	e := newEngine(t, cfg)

	// Bounces at 0, 20 and 60 ms; only the first and last are far enough
	// apart.
	script := [][]classify.ContactEvent{
		{drop(cupID)}, nil, {drop(cupID)}, nil, nil, nil, {drop(cupID)},
	}
	var sounded []int
	for _, events := range script {
		r := e.Step(events, nil)
		for _, ev := range r.Events {
			if ev.Kind == classify.Impact && ev.Sound != nil {
				sounded = append(sounded, r.Frame)
			}
		}
	}
	if want := []int{0, 6}; !slices.Equal(sounded, want) {
		t.Errorf("impacts sounded in frames %v, want %v", sounded, want)
	}
}

func TestStep_LighterObjectRings(t *testing.T) {
	t.Parallel()

	hit := func(primary, secondary int) *pcm.Sound {
		e := newEngine(t, config.Default())
		ev := drop(primary)
		ev.SecondaryID, ev.HasSecondary = secondary, true
		r := e.Step([]classify.ContactEvent{ev}, nil)
		if r.Events[0].Sound == nil {
			t.Fatalf("hit(%d, %d) made no sound", primary, secondary)
		}
		return r.Events[0].Sound
	}

	a, b := hit(cupID, tableID), hit(tableID, cupID)
	if !slices.Equal(a.Samples, b.Samples) {
		t.Fatal("sound depends on which object was reported first")
	}

	p := profiles()
	cup, table := p[cupID], p[tableID]
	intensity := 2 * 1 / (1 + cup.Mass)
	want := impact.New(material.Default()).Synthesize(cup, &table, intensity, nil)
	if !slices.Equal(a.Samples, want.Samples) {
		t.Error("engine sound differs from the cup ringing against the table")
	}
}

func TestStep_ScrapeLifecycle(t *testing.T) {
	t.Parallel()

	e := newEngine(t, config.Default())
	pair := classify.NewPair(cupID, tableID)

	var out pcm.Sound
	total := 0
	for i := range 3 {
		r := e.Step([]classify.ContactEvent{slide(cupID, tableID)}, &out)
		ev := r.Events[0]
		if ev.Kind != classify.Scrape {
			t.Fatalf("frame %d kind = %v, want scrape", i, ev.Kind)
		}
		if ev.Changed != (i == 0) {
			t.Errorf("frame %d changed = %v", i, ev.Changed)
		}
		if ev.Sound == nil {
			t.Fatalf("frame %d scrape made no sound", i)
		}
		total += ev.Sound.Length()
	}
	if out.Length() != total {
		t.Errorf("out has %d samples, want %d", out.Length(), total)
	}
	if got := e.ActiveScrapes(); !slices.Equal(got, []classify.Pair{pair}) {
		t.Errorf("ActiveScrapes() = %v, want [%v]", got, pair)
	}

	// The pair is missing from this frame: contact lost.
	r := e.Step(nil, &out)
	if !slices.Equal(r.Ended, []classify.Pair{pair}) {
		t.Errorf("Ended = %v, want [%v]", r.Ended, pair)
	}
	if n := len(e.ActiveScrapes()); n != 0 {
		t.Errorf("%d scrapes still active", n)
	}

	// History was dropped, so the next slide is a new contact.
	r = e.Step([]classify.ContactEvent{slide(tableID, cupID)}, &out)
	if ev := r.Events[0]; ev.Kind != classify.Scrape || !ev.Changed {
		t.Errorf("after loss kind = %v changed %v, want a new scrape", ev.Kind, ev.Changed)
	}
}

func TestStep_ScrapeUsesContactFriction(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	e := newEngine(t, cfg)
	r := e.Step([]classify.ContactEvent{slide(cupID, tableID)}, nil)
	ev := r.Events[0]
	if ev.Sound == nil {
		t.Fatal("scrape made no sound")
	}

	p := profiles()
	cup := p[cupID]
	modes, err := material.Default().Modes(cup.Material, cup.Size)
	if err != nil {
		t.Fatal(err)
	}
	syn := scrape.New(material.Default(),
		scrape.WithSampleRate(cfg.SampleRate),
		scrape.WithFrameDuration(cfg.FrameDuration.Std()),
		scrape.WithMasterAmp(cfg.MasterAmp),
		scrape.WithMaxSpeed(cfg.MaxScrapeSpeed),
		scrape.WithSeed(cfg.Seed),
	)
	n := int(ResonanceTime.Seconds() * float64(cfg.SampleRate))
	st := syn.Begin(ev.Pair, material.ScrapeWood,
		scrape.WithAmp(cup.Amp),
		scrape.WithFriction((0.47+0.35)/2), // ceramic on hard wood
		scrape.WithResonance(modal.SynthesizeHead(modes, cup.Resonance, cfg.SampleRate, n)),
	)
	if want := syn.Continue(st, ev.Intensity); !slices.Equal(ev.Sound.Samples, want.Samples) {
		t.Error("engine scrape differs from ceramic sliding on hard wood")
	}
}

func TestContactFriction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b material.Material
		want float64
	}{
		{"rubber on metal", material.Rubber, material.Metal, (0.75 + 0.43) / 2},
		{"same material", material.Glass, material.Glass, 0.65},
		{"one unknown", material.PlasticHard, material.Material(-1), 0.3},
		{"both unknown", material.Material(-1), material.Material(-2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := contactFriction(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("contactFriction(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStep_ContactLostEndsScrape(t *testing.T) {
	t.Parallel()

	e := newEngine(t, config.Default())
	pair := classify.NewPair(cupID, tableID)

	e.Step([]classify.ContactEvent{slide(cupID, tableID)}, nil)
	r := e.Step([]classify.ContactEvent{lost(slide(cupID, tableID))}, nil)

	if ev := r.Events[0]; ev.Kind != classify.None || ev.Sound != nil {
		t.Errorf("lost contact = %v sound %v, want silent none", ev.Kind, ev.Sound != nil)
	}
	if !slices.Equal(r.Ended, []classify.Pair{pair}) {
		t.Errorf("Ended = %v, want [%v]", r.Ended, pair)
	}
}

func TestStep_UnknownObject(t *testing.T) {
	t.Parallel()

	log, hook := logtest.NewNullLogger()
	e := newEngine(t, config.Default(), WithLogger(log))

	for range 2 {
		r := e.Step([]classify.ContactEvent{drop(42)}, nil)
		if r.Events[0].Sound == nil {
			t.Error("unknown object made no sound")
		}
		e.Step(nil, nil)
	}

	warned := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["object"] == 42 {
			warned++
		}
	}
	if warned != 1 {
		t.Errorf("warned %d times about object 42, want once", warned)
	}
}

func TestStep_UnregisteredMaterial(t *testing.T) {
	t.Parallel()

	reg, err := material.NewRegistry(material.WithModes(material.Ceramic, 1, nil))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	log, hook := logtest.NewNullLogger()
	e := newEngine(t, config.Default(), WithRegistry(reg), WithLogger(log))

	r := e.Step([]classify.ContactEvent{drop(cupID)}, nil)
	if r.Events[0].Sound == nil {
		t.Fatal("cup without modes made no sound, want the default object")
	}

	d := material.DefaultObject()
	d.Mass = profiles()[cupID].Mass
	intensity := 2 * 1 / (1 + d.Mass)
	want := impact.New(reg).Synthesize(d, nil, intensity, nil)
	if !slices.Equal(r.Events[0].Sound.Samples, want.Samples) {
		t.Error("fallback sound differs from the default object")
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["material"] != material.Ceramic {
		t.Errorf("last log entry = %+v, want a warning about ceramic", entry)
	}
}

func TestStep_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Variation = true
	cfg.Seed = 7

	run := func() []int16 {
		e := newEngine(t, cfg)
		var out pcm.Sound
		e.Step([]classify.ContactEvent{drop(cupID), slide(cupID, tableID)}, &out)
		e.Step([]classify.ContactEvent{slide(cupID, tableID)}, &out)
		e.Step([]classify.ContactEvent{drop(tableID)}, &out)
		return out.Samples
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("scene made no sound")
	}
	if !slices.Equal(a, b) {
		t.Error("same scene and seed gave different audio")
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	e, err := New(config.Default(), WithProfiles(profiles()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	e.Step([]classify.ContactEvent{slide(cupID, tableID)}, nil)

	if err := e.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if n := len(e.ActiveScrapes()); n != 0 {
		t.Errorf("%d scrapes active after Close", n)
	}
	if err := e.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
	if err := e.SetProfile(3, material.DefaultObject()); !errors.Is(err, ErrClosed) {
		t.Errorf("SetProfile() after Close error = %v, want ErrClosed", err)
	}

	var out pcm.Sound
	r := e.Step([]classify.ContactEvent{drop(cupID)}, &out)
	if len(r.Events) != 0 || out.Length() != 0 {
		t.Errorf("closed engine produced %d events, %d samples", len(r.Events), out.Length())
	}
}

func BenchmarkStep(b *testing.B) {
	e := newEngine(b, config.Default())
	events := []classify.ContactEvent{slide(cupID, tableID)}

	b.ReportAllocs()
	for b.Loop() {
		e.Step(events, nil)
		e.Step(nil, nil)
	}
}
