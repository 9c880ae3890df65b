// SPDX-License-Identifier: EPL-2.0

// Package classify decides, frame by frame, whether a contact between two
// bodies should sound like an impact, a scrape, a roll or nothing.
//
// Detect looks at one frame only. Classify adds per pair hysteresis on
// top: it takes the History of the previous frame and returns the next
// one, so callers that keep their own state need nothing else. Tracker
// keeps the histories in a map for callers that do not.
//
//	tr := classify.NewTracker(classify.DefaultThresholds())
//	for _, ev := range events {
//	    res := tr.Classify(ev)
//	    if res.Kind == classify.Impact && res.Changed {
//	        // play an impact at res.Intensity
//	    }
//	}
//
// Velocities are split into a normal part, along the mean of the contact
// normals, and a tangential part. Impact intensity is the normal speed
// scaled down for heavy bodies; scrape and roll intensity is the
// tangential speed.
package classify
