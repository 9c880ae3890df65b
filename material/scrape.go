// SPDX-License-Identifier: EPL-2.0

package material

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// ScrapeMaterial names the surface texture of a scrape surface.
type ScrapeMaterial int

const (
	ScrapeCeramic ScrapeMaterial = iota
	ScrapeWood
	ScrapePlywood
	ScrapeAcrylic
	ScrapeVinyl
	ScrapeSandpaper
	ScrapeMetal

	numScrapeMaterials
)

var scrapeNames = [numScrapeMaterials]string{
	"ceramic", "wood", "plywood", "acrylic", "vinyl", "sandpaper", "metal",
}

func (s ScrapeMaterial) String() string {
	if s < 0 || s >= numScrapeMaterials {
		return fmt.Sprintf("scrape_material(%d)", int(s))
	}
	return scrapeNames[s]
}

func (s ScrapeMaterial) valid() bool { return s >= 0 && s < numScrapeMaterials }

// ScrapeMaterials lists every known scrape material.
func ScrapeMaterials() []ScrapeMaterial {
	out := make([]ScrapeMaterial, numScrapeMaterials)
	for i := range out {
		out[i] = ScrapeMaterial(i)
	}
	return out
}

func ParseScrapeMaterial(s string) (ScrapeMaterial, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range scrapeNames {
		if name == s {
			return ScrapeMaterial(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScrapeMaterial, s)
}

func (s ScrapeMaterial) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScrapeMaterial, int(s))
	}
	return []byte(s.String()), nil
}

func (s *ScrapeMaterial) UnmarshalText(text []byte) error {
	v, err := ParseScrapeMaterial(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Grain describes how a scrape surface sounds. Slope and Curvature are the
// first and second derivatives of the surface height profile, each scaled
// to a peak of 1. They are shared and must not be modified.
type Grain struct {
	Material         ScrapeMaterial
	DistancePerGrain float64 // meters of travel per grain
	PointsPerGrain   int     // surface points consumed per grain
	Roughness        float64 // linear gain
	Drive            float64 // input gain of the curvature non-linearity
	Slope            []float32
	Curvature        []float32
}

// Len is the number of points in the surface profile.
func (g Grain) Len() int { return min(len(g.Slope), len(g.Curvature)) }

type texture struct {
	DistancePerGrain float64
	PointsPerGrain   int
	Roughness        float64
	Drive            float64
	Smoothing        int // moving average width applied to the raw noise
}

var textures = [numScrapeMaterials]texture{
	ScrapeCeramic:   {0.0012, 8, 0.5, 3, 3},
	ScrapeWood:      {0.002, 8, 0.8, 2, 5},
	ScrapePlywood:   {0.0016, 8, 0.9, 2.5, 4},
	ScrapeAcrylic:   {0.001, 6, 0.3, 4, 6},
	ScrapeVinyl:     {0.0014, 6, 0.4, 3, 6},
	ScrapeSandpaper: {0.001, 16, 1.5, 1.5, 1},
	ScrapeMetal:     {0.0011, 8, 0.45, 5, 4},
}

// SurfaceLength is the number of points in a generated surface profile.
const SurfaceLength = 4096

// minSurface is the shortest height profile that still has a curvature.
const minSurface = 4

// generateSurface builds a deterministic height profile for s: white noise
// from a per-material seed, smoothed twice with a circular moving average.
func generateSurface(s ScrapeMaterial, width int) []float32 {
	rng := rand.New(rand.NewPCG(uint64(s)+1, 0x5c7a9e))
	h := make([]float32, SurfaceLength)
	for i := range h {
		h[i] = float32(rng.NormFloat64())
	}
	h = smooth(h, width)
	return smooth(h, width)
}

func smooth(h []float32, width int) []float32 {
	if width <= 1 {
		return h
	}
	n := len(h)
	out := make([]float32, n)
	half := width / 2
	for i := range out {
		var sum float32
		for k := -half; k < width-half; k++ {
			sum += h[((i+k)%n+n)%n]
		}
		out[i] = sum / float32(width)
	}
	return out
}

// derivatives returns the circular first and second differences of h, each
// scaled to a peak magnitude of 1.
func derivatives(h []float32) (slope, curvature []float32) {
	n := len(h)
	slope = make([]float32, n)
	for i := range slope {
		slope[i] = h[(i+1)%n] - h[i]
	}
	curvature = make([]float32, n)
	for i := range curvature {
		curvature[i] = slope[(i+1)%n] - slope[i]
	}
	normalize(slope)
	normalize(curvature)
	return slope, curvature
}

func normalize(s []float32) {
	var peak float64
	for _, v := range s {
		peak = max(peak, math.Abs(float64(v)))
	}
	if peak == 0 {
		return
	}
	inv := float32(1 / peak)
	for i := range s {
		s[i] *= inv
	}
}

func buildGrain(s ScrapeMaterial, heights []float32) Grain {
	tx := textures[s]
	if heights == nil {
		heights = generateSurface(s, tx.Smoothing)
	}
	slope, curvature := derivatives(heights)
	return Grain{
		Material:         s,
		DistancePerGrain: tx.DistancePerGrain,
		PointsPerGrain:   tx.PointsPerGrain,
		Roughness:        tx.Roughness,
		Drive:            tx.Drive,
		Slope:            slope,
		Curvature:        curvature,
	}
}
