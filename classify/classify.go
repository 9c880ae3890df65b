// SPDX-License-Identifier: EPL-2.0

package classify

import "github.com/ik5/physaudio/vmath"

// Result is the classification of one contact in one frame.
type Result struct {
	Kind      Kind
	Intensity float64 // m/s
	// Changed is set when Kind differs from the kind reported for the pair
	// in the previous frame.
	Changed bool
	// Detected is what this frame alone looks like, before hysteresis.
	Detected Kind
}

// History is what the classifier keeps about a pair between frames. The
// zero History is a contact that has not been seen yet.
type History struct {
	Kind      Kind
	Candidate Kind // kind waiting to replace Kind
	Streak    int  // consecutive frames Candidate was detected
	Frames    int  // frames since the contact began
	Area      float64
}

// Fresh reports whether the history belongs to a new contact.
func (h History) Fresh() bool { return h.Frames == 0 }

type motion struct {
	speed      float64
	normal     float64
	tangential float64
	angular    float64
}

func measure(ev ContactEvent) motion {
	m := motion{
		speed:   vmath.V3Mag(ev.RelativeVelocity),
		angular: vmath.V3Mag(ev.AngularVelocity),
	}
	normal := vmath.V3Mean(ev.ContactNormals)
	if normal == (vmath.Vec3{}) {
		// No normal: the whole velocity counts as approach speed.
		m.normal = m.speed
		return m
	}
	n, t := vmath.V3Decompose(ev.RelativeVelocity, normal)
	m.normal = vmath.V3Mag(n)
	m.tangential = vmath.V3Mag(t)
	return m
}

// Detect classifies ev on its own. Rules, first match wins:
//
//  1. slower than RestingSpeed with a stable area: roll when spinning and
//     still moving tangentially, otherwise none
//  2. normal speed above ImpactSpeed, or an area grown by ImpactAreaRatio:
//     impact
//  3. tangential speed above ScrapeSpeed with a small normal speed: scrape,
//     or roll when spinning
//  4. none
func Detect(ev ContactEvent, th Thresholds) Kind {
	return detect(ev, measure(ev), th)
}

func detect(ev ContactEvent, m motion, th Thresholds) Kind {
	if ev.Area <= 0 || m.speed < th.MinCollisionSpeed {
		return None
	}

	prevArea := ev.HasPreviousArea && ev.PreviousArea > 0
	stable := prevArea &&
		ev.Area >= ev.PreviousArea*(1-th.AreaEpsilon) &&
		ev.Area < ev.PreviousArea*th.ImpactAreaRatio
	grew := prevArea && ev.Area >= ev.PreviousArea*th.ImpactAreaRatio

	if m.speed < th.RestingSpeed && stable {
		if m.angular > th.RollAngularSpeed && m.tangential > th.RollMinTangentialSpeed {
			return Roll
		}
		return None
	}
	if m.normal > th.ImpactSpeed || (grew && m.speed >= th.RestingSpeed) {
		return Impact
	}
	if m.tangential > th.ScrapeSpeed && m.normal < th.ScrapeMaxNormalSpeed {
		if m.angular > th.RollAngularSpeed {
			return Roll
		}
		return Scrape
	}
	return None
}

func intensity(k Kind, ev ContactEvent, m motion, th Thresholds) float64 {
	switch k {
	case Impact:
		v := m.normal
		if v <= th.ImpactSpeed {
			// impact found from area growth
			v = m.speed
		}
		return v * th.ReferenceMass / (th.ReferenceMass + ev.LighterMass())
	case Scrape, Roll:
		return m.tangential
	default:
		return 0
	}
}

// Classify reports the kind of ev given the pair's history and returns the
// history to pass in the next frame.
//
// A new contact reports what it looks like at once. After that a different
// kind has to be detected th.MinDwellFrames frames in a row before it is
// reported, so one noisy frame cannot flip an ongoing contact. An event
// with zero area ends the contact and returns a fresh history.
//
// When ev has no previous area, the area kept in prev is used.
func Classify(ev ContactEvent, prev History, th Thresholds) (Result, History) {
	if ev.Area <= 0 {
		return Result{Kind: None, Changed: prev.Kind != None}, History{}
	}
	if !ev.HasPreviousArea && !prev.Fresh() {
		ev.PreviousArea, ev.HasPreviousArea = prev.Area, true
	}

	m := measure(ev)
	detected := detect(ev, m, th)

	next := History{Kind: prev.Kind, Frames: prev.Frames + 1, Area: ev.Area}
	switch {
	case prev.Fresh():
		next.Kind = detected
	case detected == prev.Kind:
	default:
		next.Candidate, next.Streak = detected, 1
		if prev.Streak > 0 && prev.Candidate == detected {
			next.Streak = prev.Streak + 1
		}
		if next.Streak >= th.MinDwellFrames {
			next.Kind = detected
			next.Candidate, next.Streak = None, 0
		}
	}

	return Result{
		Kind:      next.Kind,
		Intensity: intensity(next.Kind, ev, m, th),
		Changed:   next.Kind != prev.Kind,
		Detected:  detected,
	}, next
}
