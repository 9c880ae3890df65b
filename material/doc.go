// SPDX-License-Identifier: EPL-2.0

// Package material holds the static acoustic data of simulated objects.
//
// A Registry maps a Material and a size bucket (0 to MaxSize) to the modal
// description of that object, and a ScrapeMaterial to the Grain used when
// something slides across it. Registries never change after NewRegistry
// returns, so one registry can be shared by every synthesizer.
//
//	modes, err := material.Default().Modes(material.Glass, 2)
//	if errors.Is(err, material.ErrMaterialNotFound) {
//	    modes, _ = material.Default().Modes(material.PlasticHard, 1)
//	}
//
// # Sizes
//
// Larger size buckets have lower frequencies, longer decays and louder
// onsets. SizeFromExtents turns a bounding box into a bucket.
//
// # Scrape surfaces
//
// Each scrape material has a height profile. Unless one is supplied with
// WithSurface, the profile is generated from seeded noise, so it is the same
// in every process. LoadSurfaceFile reads a profile from any audio file the
// given decoder registry understands.
//
// # Profiles
//
// A Profile is what an object sounds like: material, size, loudness,
// resonance and mass. LoadProfiles reads a table of them from JSON.
package material
