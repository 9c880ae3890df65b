// SPDX-License-Identifier: EPL-2.0

package material

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/physaudio/audio"
)

// SurfaceSampleRate is the rate recorded surfaces are resampled to, so a
// profile has the same point density whatever it was recorded at.
const SurfaceSampleRate = 8000

// LoadSurface reads a recorded surface profile from src: the audio is mixed
// to mono, resampled to SurfaceSampleRate and used as height values.
// The result can be passed to WithSurface.
func LoadSurface(src audio.Source) ([]float32, error) {
	heights, err := audio.CollectMono(src, SurfaceSampleRate, max(src.BufSize(), 1024))
	if err != nil {
		return nil, fmt.Errorf("reading surface: %w", err)
	}
	if len(heights) < minSurface {
		return nil, fmt.Errorf("%w: %d points", ErrSurfaceTooShort, len(heights))
	}
	return heights, nil
}

// LoadSurfaceFile decodes path with the decoder registered for its extension
// and passes it to LoadSurface.
func LoadSurfaceFile(path string, decoders *audio.Registry) ([]float32, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := decoders.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return LoadSurface(src)
}
