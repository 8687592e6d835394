// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs on the input when downsampling.
//
// Output frame j sits at source position j*srcRate/dstRate, so a source of N
// frames yields ceil(N*dstRate/srcRate) frames. Positions past the last
// source frame repeat it.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// ring holds frames base-1, base, base+1 and base+2
	ring [4][]float32
	base int64
	out  int64 // output frames produced

	loaded  int // real source frames pulled so far
	started bool
	srcDone bool
	err     error

	in           []float32
	inPos, inLen int

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	// read whole frames from src in blocks of about its preferred size
	block := max(src.BufSize()/channels, 1) * channels

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		in:       make([]float32, block),
		lowpass:  src.SampleRate() > dstRate,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.ring {
		r.ring[i] = make([]float32, channels)
	}

	if r.srcRate <= 0 || r.dstRate <= 0 {
		r.err = fmt.Errorf("%w: %d to %d Hz", ErrInvalidRate, r.srcRate, r.dstRate)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels

		if err == io.EOF {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		if r.loaded == 0 {
			// start from the first frame to avoid a warm-up transient
			copy(r.state, dst)
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	r.loaded++

	return true, nil
}

// fill loads slot i with the next frame, or repeats slot i-1 at the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.ring[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.ring[i], r.ring[i-1])
	}

	return nil
}

func (r *Resampler) prime() error {
	r.started = true

	ok, err := r.pull(r.ring[1])
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	copy(r.ring[0], r.ring[1])

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) advance() error {
	r.ring[0], r.ring[1], r.ring[2], r.ring[3] = r.ring[1], r.ring[2], r.ring[3], r.ring[0]
	r.base++

	return r.fill(3)
}

func (r *Resampler) exhausted() bool {
	return r.srcDone && r.inPos >= r.inLen && r.base >= int64(r.loaded)
}

// ReadSamples produces dst samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.err != nil {
		return 0, r.err
	}

	if !r.started {
		if err := r.prime(); err != nil {
			r.err = err
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		// exact source position of this output frame: target + rem/dstRate
		num := r.out * r.srcRate
		target, rem := num/r.dstRate, num%r.dstRate

		for r.base < target && !r.exhausted() {
			if err := r.advance(); err != nil {
				r.err = err
				return written * r.channels, err
			}
		}

		if r.exhausted() {
			return written * r.channels, io.EOF
		}

		x := float32(rem) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = catmullRom(r.ring[0][c], r.ring[1][c], r.ring[2][c], r.ring[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}

// catmullRom interpolates between y1 and y2 at fraction x in [0, 1), with y0
// and y3 as the outer control points.
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
