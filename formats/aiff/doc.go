// SPDX-License-Identifier: EPL-2.0

// Package aiff reads integer PCM AIFF files and writes 16-bit ones through
// github.com/go-audio/aiff.
//
// The go-audio decoder needs to seek; readers that cannot are buffered in
// memory first. Encode needs an io.WriteSeeker for the same reason.
//
//	f, _ := os.Open("surface.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
