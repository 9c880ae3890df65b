// SPDX-License-Identifier: EPL-2.0

// Package impact renders the sound of two objects hitting each other.
//
// Each object rings with the modes its material and size have in a
// material.Registry. Impacts never fail: an object without modes is
// logged and the result degrades to the other object alone, or to a
// zero-length sound.
//
//	syn := impact.New(material.Default(), impact.WithMasterAmp(0.8))
//	glass := material.Profile{Material: material.Glass, Size: 1, Amp: 0.4, Resonance: 0.8, Mass: 0.3}
//	sound := syn.Synthesize(glass, nil, 1.2, nil) // glass dropped on the floor
package impact
