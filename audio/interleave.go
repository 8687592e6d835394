// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/riffwave/sample"

// Interleave writes planar channel buffers into dst as frames, channel c of
// frame k at dst[k*len(channels)+c]. It stops at the shortest channel or when
// dst is full and returns the number of frames written.
func Interleave[T sample.Sample](dst []T, channels [][]T) (int, error) {
	nch := len(channels)
	if nch == 0 {
		return 0, ErrInvalidChannels
	}

	frames := len(dst) / nch
	for _, ch := range channels {
		frames = min(frames, len(ch))
	}

	for c, ch := range channels {
		for k, v := range ch[:frames] {
			dst[k*nch+c] = v
		}
	}

	return frames, nil
}

// Deinterleave splits interleaved src into one buffer per channel. The
// channel count is len(dst). Trailing samples that do not fill a frame are
// ignored. It returns the number of frames written.
func Deinterleave[T sample.Sample](dst [][]T, src []T) (int, error) {
	nch := len(dst)
	if nch == 0 {
		return 0, ErrInvalidChannels
	}

	frames := len(src) / nch
	for _, ch := range dst {
		frames = min(frames, len(ch))
	}

	for k := range frames {
		frame := src[k*nch : (k+1)*nch]
		for c, v := range frame {
			dst[c][k] = v
		}
	}

	return frames, nil
}
