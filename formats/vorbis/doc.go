// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
