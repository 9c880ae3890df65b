// SPDX-License-Identifier: EPL-2.0

package material

import (
	"fmt"
	"strings"
)

// Material names the substance an object is made of for impact sounds.
type Material int

const (
	Ceramic Material = iota
	Glass
	Stone
	Metal
	WoodHard
	WoodMedium
	WoodSoft
	Fabric
	Leather
	PlasticHard
	PlasticSoftFoam
	Rubber
	Paper
	Cardboard

	numMaterials
)

var materialNames = [numMaterials]string{
	"ceramic", "glass", "stone", "metal",
	"wood_hard", "wood_medium", "wood_soft",
	"fabric", "leather",
	"plastic_hard", "plastic_soft_foam",
	"rubber", "paper", "cardboard",
}

func (m Material) String() string {
	if m < 0 || m >= numMaterials {
		return fmt.Sprintf("material(%d)", int(m))
	}
	return materialNames[m]
}

func (m Material) valid() bool { return m >= 0 && m < numMaterials }

// Materials lists every known material in declaration order.
func Materials() []Material {
	out := make([]Material, numMaterials)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// ParseMaterial is the inverse of Material.String.
func ParseMaterial(s string) (Material, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range materialNames {
		if name == s {
			return Material(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

func (m Material) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMaterial, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Material) UnmarshalText(text []byte) error {
	v, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Info holds the physical constants of a material.
type Info struct {
	Density         float64 // kg/m³
	DynamicFriction float64
	StaticFriction  float64
}

var infos = [numMaterials]Info{
	Ceramic:         {2180, 0.47, 0.47},
	Glass:           {2500, 0.65, 0.68},
	Stone:           {2000, 0.7, 0.72},
	Metal:           {8450, 0.43, 0.47},
	WoodHard:        {1200, 0.35, 0.37},
	WoodMedium:      {700, 0.35, 0.37},
	WoodSoft:        {400, 0.35, 0.37},
	Fabric:          {1540, 0.65, 0.67},
	Leather:         {860, 0.4, 0.43},
	PlasticHard:     {1150, 0.3, 0.35},
	PlasticSoftFoam: {285, 0.45, 0.47},
	Rubber:          {1522, 0.75, 0.8},
	Paper:           {1200, 0.47, 0.5},
	Cardboard:       {698, 0.45, 0.48},
}

// InfoOf returns the physical constants of m. Unknown materials return the
// zero Info and false.
func InfoOf(m Material) (Info, bool) {
	if !m.valid() {
		return Info{}, false
	}
	return infos[m], true
}

// MaxSize is the largest size bucket.
const MaxSize = 5

// SizeFromExtents maps an object's bounding box extents, in meters, to a
// size bucket.
func SizeFromExtents(x, y, z float64) int {
	s := x + y + z
	switch {
	case s <= 0.1:
		return 0
	case s <= 0.25:
		return 1
	case s <= 0.5:
		return 2
	case s <= 1:
		return 3
	case s <= 3:
		return 4
	default:
		return 5
	}
}
