// SPDX-License-Identifier: EPL-2.0

package material

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Profile is the static audio data of one simulated object.
type Profile struct {
	Material  Material `json:"material"`
	Size      int      `json:"size"`
	Amp       float64  `json:"amp"`
	Resonance float64  `json:"resonance"`
	Mass      float64  `json:"mass"`

	// ScrapeMaterial is set on objects that can act as scrape surfaces.
	ScrapeMaterial *ScrapeMaterial `json:"scrape_material,omitempty"`
}

// DefaultObject is used for objects without a usable profile.
func DefaultObject() Profile {
	return Profile{Material: PlasticHard, Size: 1, Amp: 0.2, Resonance: 0.45, Mass: 1}
}

// Environment is the floor and walls: everything that is not an object.
func Environment() Profile {
	sm := ScrapeWood
	return Profile{Material: WoodMedium, Size: 4, Amp: 0.5, Resonance: 0.1, Mass: 100, ScrapeMaterial: &sm}
}

// Validate checks the ranges of every field.
func (p Profile) Validate() error {
	switch {
	case !p.Material.valid():
		return fmt.Errorf("%w: material %d", ErrInvalidProfile, int(p.Material))
	case p.Size < 0 || p.Size > MaxSize:
		return fmt.Errorf("%w: size %d out of [0,%d]", ErrInvalidProfile, p.Size, MaxSize)
	case p.Amp < 0 || p.Amp > 1:
		return fmt.Errorf("%w: amp %v out of [0,1]", ErrInvalidProfile, p.Amp)
	case p.Resonance < 0:
		return fmt.Errorf("%w: negative resonance %v", ErrInvalidProfile, p.Resonance)
	case p.Mass < 0:
		return fmt.Errorf("%w: negative mass %v", ErrInvalidProfile, p.Mass)
	case p.ScrapeMaterial != nil && !p.ScrapeMaterial.valid():
		return fmt.Errorf("%w: scrape material %d", ErrInvalidProfile, int(*p.ScrapeMaterial))
	}
	return nil
}

// WithScrape returns a copy of p usable as a scrape surface of s.
func (p Profile) WithScrape(s ScrapeMaterial) Profile {
	p.ScrapeMaterial = &s
	return p
}

// LoadProfiles reads a JSON object mapping object IDs to profiles:
//
//	{"3": {"material": "glass", "size": 1, "amp": 0.4, "resonance": 0.8, "mass": 0.3}}
//
// Every profile is validated.
func LoadProfiles(r io.Reader) (map[int]Profile, error) {
	var raw map[string]Profile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}

	out := make(map[int]Profile, len(raw))
	for key, p := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("object id %q: %w", key, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", id, err)
		}
		out[id] = p
	}
	return out, nil
}
