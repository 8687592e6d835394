// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/riffwave/audio"
)

// source adapts a Decoder to audio.Source, yielding float32 samples.
type source struct {
	dec *Decoder
}

func (s *source) SampleRate() int { return int(s.dec.format.SampleRate) }
func (s *source) Channels() int   { return int(s.dec.format.Channels) }
func (s *source) BufSize() int    { return scratchSamples }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.Channels()
	if want == 0 {
		return 0, nil
	}

	n, err := ReadSamples(s.dec, dst[:want])
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// NewSource exposes dec as an audio.Source. Samples of any stored
// representation are converted to float32 in [-1, 1). Reads are trimmed to
// whole frames; a buffer shorter than one frame reads nothing.
func NewSource(dec *Decoder) audio.Source {
	return &source{dec: dec}
}

// SourceDecoder implements audio.Decoder for WAV streams, so it can be placed
// in an audio.Registry.
type SourceDecoder struct {
	Options []Option
}

func (sd SourceDecoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := NewDecoder(r, sd.Options...)
	if err != nil {
		return nil, err
	}
	if dec.Kind() == 0 {
		return nil, ErrUnsupported
	}

	return NewSource(dec), nil
}
