// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/physaudio/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, input frames
// go through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// taps[0..3] hold frames t-1, t, t+1, t+2; pos is the fraction between
	// taps[1] and taps[2].
	taps   [4][]float32
	valid  [4]bool
	pos    float64
	primed bool
	eof    bool

	frame []float32
	lp    []float32 // low-pass state, nil when not downsampling
}

const lowPassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	ch := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: ch,
		frame:    make([]float32, ch),
	}
	for i := range r.taps {
		r.taps[i] = make([]float32, ch)
	}
	if r.step > 1 {
		r.lp = make([]float32, ch)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from src into r.frame, filtered when
// downsampling. It reports false once src has nothing left.
func (r *Resampler) readFrame(first bool) (bool, error) {
	if r.eof {
		return false, nil
	}
	n, err := r.src.ReadSamples(r.frame)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		r.eof = true
		return false, nil
	}
	if r.lp != nil {
		if first {
			copy(r.lp, r.frame)
		}
		for c, v := range r.frame {
			r.lp[c] = lowPassAlpha*v + (1-lowPassAlpha)*r.lp[c]
			r.frame[c] = r.lp[c]
		}
	}
	return true, nil
}

// prime loads the first frame into taps 0 and 1 and the next two frames,
// when there are any, into taps 2 and 3.
func (r *Resampler) prime() (bool, error) {
	r.primed = true
	ok, err := r.readFrame(true)
	if err != nil || !ok {
		return false, err
	}
	copy(r.taps[0], r.frame)
	copy(r.taps[1], r.frame)
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.taps); i++ {
		ok, err := r.readFrame(false)
		if err != nil {
			return false, err
		}
		if ok {
			copy(r.taps[i], r.frame)
		}
		r.valid[i] = ok
	}
	return true, nil
}

// advance shifts the taps by one frame and reports whether the new current
// frame exists.
func (r *Resampler) advance() (bool, error) {
	first := r.taps[0]
	copy(r.taps[:], r.taps[1:])
	copy(r.valid[:], r.valid[1:])
	r.taps[3] = first

	ok, err := r.readFrame(false)
	if err != nil {
		return false, err
	}
	if ok {
		copy(r.taps[3], r.frame)
	}
	r.valid[3] = ok
	return r.valid[1], nil
}

// ReadSamples fills dst with frames at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		ok, err := r.prime()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			ok, err := r.advance()
			if err != nil {
				return written * r.channels, err
			}
			if !ok {
				return written * r.channels, io.EOF
			}
		}

		x := float32(r.pos)
		for c := range r.channels {
			y1 := r.taps[1][c]
			y2 := y1
			if r.valid[2] {
				y2 = r.taps[2][c]
			}
			y3 := y2
			if r.valid[3] {
				y3 = r.taps[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(r.taps[0][c], y1, y2, y3, x)
		}
		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}
