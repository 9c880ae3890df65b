// SPDX-License-Identifier: EPL-2.0

package classify

import (
	"strconv"

	"github.com/ik5/physaudio/vmath"
)

// ContactEvent is one contact between two bodies, or a body and the
// environment, in one simulation frame.
type ContactEvent struct {
	PrimaryID    int
	SecondaryID  int
	HasSecondary bool // false for environment collisions

	RelativeVelocity vmath.Vec3   // m/s
	ContactNormals   []vmath.Vec3 // averaged into one normal
	AngularVelocity  vmath.Vec3   // rad/s, of the moving body

	Area            float64 // contact area estimate; 0 means contact lost
	PreviousArea    float64
	HasPreviousArea bool

	// Masses in kg. Zero means unknown.
	PrimaryMass   float64
	SecondaryMass float64
}

// Pair returns the order independent key of the two bodies in contact.
func (ev ContactEvent) Pair() Pair {
	if !ev.HasSecondary {
		return EnvironmentPair(ev.PrimaryID)
	}
	return NewPair(ev.PrimaryID, ev.SecondaryID)
}

// LighterMass is the smaller known mass of the two bodies. Environment
// contacts only count the primary.
func (ev ContactEvent) LighterMass() float64 {
	m := max(ev.PrimaryMass, 0)
	if ev.HasSecondary && ev.SecondaryMass > 0 && (m == 0 || ev.SecondaryMass < m) {
		m = ev.SecondaryMass
	}
	return m
}

// Pair identifies a contact independently of which body was reported first.
type Pair struct {
	A, B        int
	Environment bool
}

// NewPair returns the key of bodies a and b, with A <= B.
func NewPair(a, b int) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// EnvironmentPair is the key of body id touching the environment.
func EnvironmentPair(id int) Pair {
	return Pair{A: id, B: id, Environment: true}
}

func (p Pair) String() string {
	if p.Environment {
		return strconv.Itoa(p.A) + "-env"
	}
	return strconv.Itoa(p.A) + "-" + strconv.Itoa(p.B)
}
