// SPDX-License-Identifier: EPL-2.0

package physaudio_test

import (
	"fmt"

	"github.com/ik5/physaudio"
	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/config"
	"github.com/ik5/physaudio/material"
	"github.com/ik5/physaudio/pcm"
	"github.com/ik5/physaudio/vmath"
)

// A glass hits the floor and then slides along it.
func ExampleEngine_Step() {
	eng, err := physaudio.New(config.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer eng.Close()

	glass := material.Profile{Material: material.Glass, Size: 1, Amp: 0.4, Resonance: 0.8, Mass: 0.3}
	if err := eng.SetProfile(1, glass); err != nil {
		fmt.Println(err)
		return
	}

	fall := classify.ContactEvent{
		PrimaryID:        1,
		RelativeVelocity: vmath.Vec3{Y: -3},
		ContactNormals:   []vmath.Vec3{{Y: 1}},
		Area:             0.002,
	}
	slip := fall
	slip.RelativeVelocity = vmath.Vec3{X: 0.8}

	var out pcm.Sound
	for _, ev := range []classify.ContactEvent{fall, slip, slip} {
		r := eng.Step([]classify.ContactEvent{ev}, &out)
		e := r.Events[0]
		fmt.Println(r.Frame, e.Kind, e.Changed, e.Sound != nil)
	}
	fmt.Println(out.SampleRate, out.Channels, out.Length() > 0)
	// Output:
	// 0 impact true true
	// 1 impact false false
	// 2 scrape true true
	// 44100 1 true
}
