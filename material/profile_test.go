// SPDX-License-Identifier: EPL-2.0

package material

import (
	"errors"
	"strings"
	"testing"
)

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	bad := ScrapeMaterial(42)
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"default object", DefaultObject(), false},
		{"environment", Environment(), false},
		{"unknown material", Profile{Material: 99, Amp: 0.5}, true},
		{"size too big", Profile{Material: Glass, Size: 6}, true},
		{"amp above one", Profile{Material: Glass, Amp: 1.5}, true},
		{"negative resonance", Profile{Material: Glass, Resonance: -1}, true},
		{"negative mass", Profile{Material: Glass, Mass: -2}, true},
		{"bad scrape material", Profile{Material: Glass, ScrapeMaterial: &bad}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Validate() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestProfile_Defaults(t *testing.T) {
	t.Parallel()

	env := Environment()
	if env.Material != WoodMedium || env.Size != 4 || env.Mass != 100 {
		t.Errorf("Environment() = %+v", env)
	}
	if env.ScrapeMaterial == nil || *env.ScrapeMaterial != ScrapeWood {
		t.Errorf("Environment().ScrapeMaterial = %v", env.ScrapeMaterial)
	}

	obj := DefaultObject()
	if obj.ScrapeMaterial != nil {
		t.Error("DefaultObject() is a scrape surface")
	}
	withScrape := obj.WithScrape(ScrapeVinyl)
	if *withScrape.ScrapeMaterial != ScrapeVinyl || obj.ScrapeMaterial != nil {
		t.Error("WithScrape() modified the receiver")
	}
}

func TestLoadProfiles(t *testing.T) {
	t.Parallel()

	in := `{
		"3": {"material": "glass", "size": 1, "amp": 0.4, "resonance": 0.8, "mass": 0.3},
		"7": {"material": "wood_hard", "size": 4, "amp": 0.5, "resonance": 0.2, "mass": 20, "scrape_material": "plywood"}
	}`
	profiles, err := LoadProfiles(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles", len(profiles))
	}
	if p := profiles[3]; p.Material != Glass || p.Mass != 0.3 || p.ScrapeMaterial != nil {
		t.Errorf("profile 3 = %+v", p)
	}
	if p := profiles[7]; p.ScrapeMaterial == nil || *p.ScrapeMaterial != ScrapePlywood {
		t.Errorf("profile 7 = %+v", p)
	}
}

func TestLoadProfiles_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unknown material", `{"1": {"material": "jelly"}}`, ErrUnknownMaterial},
		{"invalid range", `{"1": {"material": "glass", "amp": 4}}`, ErrInvalidProfile},
		{"bad id", `{"one": {"material": "glass"}}`, nil},
		{"not json", `[`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadProfiles(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("LoadProfiles() error = nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("LoadProfiles() error = %v, want %v", err, tt.want)
			}
		})
	}
}
