// SPDX-License-Identifier: EPL-2.0

// Package pcm holds synthesized audio as 16-bit samples and moves it to
// files, byte streams and players.
//
// Float output from the synthesizers is turned into a Sound with Wrap,
// which clamps before quantizing so loud peaks saturate instead of wrapping
// around. A zero-length Sound is how "nothing to play" is reported.
//
// Sounds that grow over several frames, such as scrapes, are built with
// Append, which refuses to join sounds of different formats:
//
//	var out pcm.Sound
//	for _, chunk := range chunks {
//	    if err := out.Append(chunk); err != nil {
//	        return err
//	    }
//	}
//	err := pcm.Write(&out, "scrape.wav")
//
// Streamer adapts a Sound to github.com/gopxl/beep for mixing and playback.
package pcm
