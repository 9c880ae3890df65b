// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder in formats/... into one registry.
package formats

import (
	"github.com/ik5/physaudio/audio"
	"github.com/ik5/physaudio/formats/aiff"
	"github.com/ik5/physaudio/formats/mp3"
	"github.com/ik5/physaudio/formats/vorbis"
	"github.com/ik5/physaudio/formats/wav"
)

// NewRegistry returns a registry keyed by lower case file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}
