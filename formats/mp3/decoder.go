// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/sample"
)

// go-mp3 always produces 16-bit little-endian stereo
const (
	channels  = 2
	frameSize = 2 * channels
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

// ReadSamples decodes whole frames only. A trailing partial frame in the
// stream is dropped.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	if cap(s.buf) < frames*frameSize {
		s.buf = make([]byte, frames*frameSize)
	}
	raw := s.buf[:frames*frameSize]

	n, err := io.ReadFull(s.dec, raw)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.done = true
		err = io.EOF
	default:
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / frameSize * channels
	for i := range samples {
		dst[i] = sample.Convert[float32](int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, dec.SampleRate()), nil
}

func newSource(dec mp3Reader, sampleRate int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		buf:        make([]byte, 8192),
	}
}
