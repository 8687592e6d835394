// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// SineSource generates a sine tone on every channel.
type SineSource struct {
	sampleRate int
	channels   int
	hz         float64
	amplitude  float64
	frames     int
	pos        int
}

// NewSineSource returns frames frames of a hz tone at the given amplitude.
// Sample k is amplitude*sin(2*pi*hz*k/sampleRate).
func NewSineSource(sampleRate, channels int, hz, amplitude float64, frames int) (*SineSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return &SineSource{
		sampleRate: sampleRate,
		channels:   channels,
		hz:         hz,
		amplitude:  amplitude,
		frames:     max(frames, 0),
	}, nil
}

func (s *SineSource) SampleRate() int { return s.sampleRate }
func (s *SineSource) Channels() int   { return s.channels }
func (s *SineSource) BufSize() int    { return 4096 }
func (s *SineSource) Close() error    { return nil }

// Frames is the total length of the tone.
func (s *SineSource) Frames() int { return s.frames }

func (s *SineSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	w := 2 * math.Pi * s.hz / float64(s.sampleRate)

	for f := range n {
		v := float32(s.amplitude * math.Sin(w*float64(s.pos+f)))
		for c := range s.channels {
			dst[f*s.channels+c] = v
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}
