// SPDX-License-Identifier: EPL-2.0

// Package scrape renders sliding contacts frame by frame.
//
// A scrape is a Stream: Begin creates it for a pair of bodies, Continue
// renders one simulation frame at the current tangential speed and End
// drops it once the bodies stop sliding or lose contact.
//
//	syn := scrape.New(material.Default())
//	st := syn.Begin(classify.EnvironmentPair(id), material.ScrapeWood)
//	for _, v := range speeds {
//	    chunk := syn.Continue(st, v)
//	    _ = out.Append(chunk)
//	}
//	syn.End(st)
//
// Each frame moves the stream along the surface by speed × frame duration.
// Every DistancePerGrain meters of travel is one grain: a few surface
// points of slope and curvature, cubic-interpolated over as many samples
// as the grain takes to cross at the current speed. The curvature goes
// through a tanh friction non-linearity before it is mixed with the slope.
// Decelerating streams read the surface backwards.
//
// Streams are deterministic: the gain jitter of each grain comes from a
// generator seeded by WithSeed and the pair, never from global state.
package scrape
