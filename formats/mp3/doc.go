// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields stereo; mix it down with audio.NewMonoMixer
// when a single channel is needed.
//
//	src, err := mp3.Decoder{}.Decode(f)
package mp3
