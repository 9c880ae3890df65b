// SPDX-License-Identifier: EPL-2.0

// Package modal renders resonant objects as sums of exponentially decaying
// cosines.
//
// # Modes
//
// A Mode is a frequency, an onset power in dB and a decay time in ms. The
// decay time is how long the mode needs to fall 60 dB at resonance 1; the
// resonance argument of Synthesize scales it, so ringing objects such as
// glass use values near 1 and dull objects such as cardboard use small ones.
//
// Each mode is cut once it has fallen ReferenceFloorDB+OnsetPower decibels,
// so loud modes last longer than quiet ones.
//
// # Summing
//
// Modes of different lengths are summed with zero padding: the output is as
// long as the longest input and its tail is never clipped.
//
//	a := modal.Synthesize(glass, 0.9, 44100)
//	b := modal.Synthesize(table, 0.2, 44100)
//	both := modal.Add(a, b)
package modal
