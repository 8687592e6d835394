// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/sample"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	toFloat    func(int) float32
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, want),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	n -= n % s.channels
	for i := range n {
		dst[i] = s.toFloat(s.intBuf.Data[i])
	}

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		s.done = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("aiff read: %w", err)
	case n < want:
		// go-audio signals the end of the sound data with a short read
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// converter returns the float mapping for samples of the given depth as
// go-audio delivers them: sign-extended ints.
func converter(bitDepth int) (func(int) float32, error) {
	switch bitDepth {
	case 8:
		return func(v int) float32 { return sample.Convert[float32](uint8(v + 128)) }, nil
	case 16:
		return func(v int) float32 { return sample.Convert[float32](int16(v)) }, nil
	case 24:
		return func(v int) float32 { return sample.Convert[float32](sample.Int24(v)) }, nil
	case 32:
		return func(v int) float32 { return sample.Convert[float32](int32(v)) }, nil
	}

	return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return newSource(dec, format, int(dec.BitDepth))
}

func newSource(dec aiffReader, format *goaudio.Format, bitDepth int) (*source, error) {
	toFloat, err := converter(bitDepth)
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		toFloat:    toFloat,
	}, nil
}
