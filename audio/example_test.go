// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/physaudio/audio"
)

func ExampleCollectMono() {
	// 4 stereo frames at 8 kHz
	stereo := []float32{0.2, 0.4, 0.2, 0.4, 0.2, 0.4, 0.2, 0.4}
	src, _ := audio.NewBufferSource(stereo, 8000, 2)

	mono, err := audio.CollectMono(src, 8000, 64)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(mono), fmt.Sprintf("%.1f", mono[0]))
	// Output: 4 0.3
}
