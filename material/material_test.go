// SPDX-License-Identifier: EPL-2.0

package material

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMaterial(t *testing.T) {
	t.Parallel()

	for _, m := range Materials() {
		got, err := ParseMaterial(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMaterial(%q) = %v, %v", m.String(), got, err)
		}
	}

	if got, err := ParseMaterial("  Wood_Hard "); err != nil || got != WoodHard {
		t.Errorf("ParseMaterial(mixed case) = %v, %v", got, err)
	}
	if _, err := ParseMaterial("unobtainium"); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("ParseMaterial(unknown) error = %v, want ErrUnknownMaterial", err)
	}
}

func TestMaterial_Text(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]Material{"m": PlasticSoftFoam})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"m":"plastic_soft_foam"}` {
		t.Errorf("json = %s", data)
	}

	var back map[string]Material
	if err := json.Unmarshal(data, &back); err != nil || back["m"] != PlasticSoftFoam {
		t.Errorf("Unmarshal() = %v, %v", back, err)
	}

	if _, err := Material(99).MarshalText(); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("MarshalText(99) error = %v", err)
	}
	if Material(99).String() != "material(99)" {
		t.Errorf("String() = %q", Material(99).String())
	}
}

func TestScrapeMaterial_Text(t *testing.T) {
	t.Parallel()

	for _, s := range ScrapeMaterials() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back ScrapeMaterial
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Errorf("round trip of %s = %v, %v", s, back, err)
		}
	}
	if _, err := ParseScrapeMaterial("velvet"); !errors.Is(err, ErrUnknownScrapeMaterial) {
		t.Errorf("ParseScrapeMaterial(velvet) error = %v", err)
	}
}

func TestInfoOf(t *testing.T) {
	t.Parallel()

	info, ok := InfoOf(Metal)
	if !ok || info.Density != 8450 {
		t.Errorf("InfoOf(Metal) = %+v, %v", info, ok)
	}
	for _, m := range Materials() {
		info, _ := InfoOf(m)
		if info.Density <= 0 || info.StaticFriction < info.DynamicFriction {
			t.Errorf("%s: implausible %+v", m, info)
		}
	}
	if _, ok := InfoOf(-1); ok {
		t.Error("InfoOf(-1) ok = true")
	}
}

func TestSizeFromExtents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y, z float64
		want    int
	}{
		{0.01, 0.01, 0.01, 0},
		{0.05, 0.05, 0, 0},
		{0.1, 0.1, 0.05, 1},
		{0.2, 0.2, 0.1, 2},
		{0.3, 0.3, 0.3, 3},
		{1, 1, 1, 4},
		{2, 2, 2, 5},
	}

	for _, tt := range tests {
		if got := SizeFromExtents(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("SizeFromExtents(%v, %v, %v) = %d, want %d", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}
