// SPDX-License-Identifier: EPL-2.0

// Package physaudio turns the contacts of a rigid body simulation into
// sound.
//
// Every simulation frame the caller hands the Engine the contacts of that
// frame. The engine classifies each one as an impact, a scrape, a roll or
// nothing, renders impacts from the modes of the objects' materials,
// drives one scrape stream per sliding pair and appends all of it to a
// single mono PCM buffer.
//
// # Quick Start
//
//	eng, _ := physaudio.New(config.Default())
//	defer eng.Close()
//
//	_ = eng.SetProfile(1, material.Profile{
//		Material: material.Glass, Size: 1, Amp: 0.4, Resonance: 0.8, Mass: 0.3,
//	})
//
//	var out pcm.Sound
//	report := eng.Step([]classify.ContactEvent{{
//		PrimaryID:        1,
//		RelativeVelocity: vmath.Vec3{Y: -2},
//		ContactNormals:   []vmath.Vec3{{Y: 1}},
//		Area:             0.01,
//	}}, &out)
//	_ = pcm.Write(&out, "drop.wav")
//
// # Objects
//
// Objects are identified by the IDs of the simulation. Each one needs a
// material.Profile; objects without one, or whose material and size are
// not in the registry, sound like Config.DefaultObject. Contacts without a
// secondary object are with the environment, which sounds like
// Config.Environment.
//
// # Sub packages
//
//   - classify: contact classification with per pair hysteresis
//   - impact: modal impact synthesis
//   - scrape: granular scrape streams
//   - material, modal: mode tables and their synthesis
//   - pcm, timeline: sound buffers, mixing and file output
//   - audio, formats: decoding recorded scrape surfaces
//   - config: engine settings from JSON and the environment
package physaudio
