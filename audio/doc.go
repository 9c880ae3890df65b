// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the decoders and
// the synthesizers.
//
// # Source
//
// A Source is a pull based stream of interleaved float32 samples. Decoders
// in formats/... return Sources, and synthesized sounds can be exposed as
// one through BufferSource, so both ends can be chained:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//
// # Resampling
//
// Resampler changes the sample rate with Catmull-Rom interpolation and a
// one-pole low-pass when downsampling. MonoMixer averages channels.
// CollectMono runs both and returns the whole stream, which is how recorded
// scrape surfaces are brought to a common rate.
//
// # Registry
//
// A Registry maps format keys such as "wav" or "ogg" to Decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
