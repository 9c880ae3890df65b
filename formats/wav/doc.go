// SPDX-License-Identifier: EPL-2.0

// Package wav reads integer PCM WAV files and writes 16-bit ones.
//
// Decoder wraps the github.com/go-audio/wav decoder and returns an
// audio.Source, so recorded surfaces can be loaded from any WAV layout that
// library understands. Readers that cannot seek are buffered in memory.
//
// There are two writers:
//
//   - Encode goes through the go-audio encoder and needs an io.WriteSeeker,
//     which is what files give you.
//   - WritePCM16 writes the canonical 44-byte header followed by the samples
//     and works on any io.Writer.
//
//	f, _ := os.Create("impact.wav")
//	defer f.Close()
//	err := wav.Encode(f, 44100, 1, samples)
package wav
