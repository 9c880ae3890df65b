// SPDX-License-Identifier: EPL-2.0

// Package timeline records the sounds of a simulation at the time they
// happened and mixes them down with beep.
//
//	tl := timeline.New(44100)
//	for frame := 0; ; frame++ {
//	    report := eng.Step(events, &buf)
//	    for _, ev := range report.Events {
//	        _ = tl.Place(time.Duration(frame)*frameTime, ev.Sound)
//	    }
//	}
//	mix, err := tl.Render()
package timeline
