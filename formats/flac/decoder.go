// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/sample"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	blockSize  int

	// current frame and the next of its samples to interleave
	cur  *frame.Frame
	next int
	done bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.blockSize * s.channels }
func (s *source) Close() error    { return nil }

// ReadSamples interleaves subframes into dst, spanning FLAC frames as
// needed. Only whole frames of samples are written.
func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0

	for len(dst)-n >= s.channels {
		if s.cur == nil || s.next >= int(s.cur.BlockSize) {
			if s.done {
				break
			}
			if err := s.advance(); err != nil {
				return n, err
			}
			continue
		}

		scale := scaler(s.cur.BitsPerSample)
		for s.next < int(s.cur.BlockSize) && len(dst)-n >= s.channels {
			for _, sub := range s.cur.Subframes {
				dst[n] = scale(sub.Samples[s.next])
				n++
			}
			s.next++
		}
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}

	return n, nil
}

func (s *source) advance() error {
	f, err := s.dec.ParseNext()
	if err == io.EOF {
		s.done = true
		s.cur = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d",
			ErrInconsistentFrame, len(f.Subframes), s.channels)
	}
	for _, sub := range f.Subframes {
		if len(sub.Samples) < int(f.BlockSize) {
			return fmt.Errorf("%w: subframe holds %d of %d samples",
				ErrInconsistentFrame, len(sub.Samples), f.BlockSize)
		}
	}

	s.cur = f
	s.next = 0

	return nil
}

// scaler maps signed samples of the given width onto [-1, 1).
func scaler(bits uint8) func(int32) float32 {
	switch bits {
	case 8:
		return func(v int32) float32 { return sample.Convert[float32](uint8(v + 128)) }
	case 16:
		return func(v int32) float32 { return sample.Convert[float32](int16(v)) }
	case 24:
		return func(v int32) float32 { return sample.Convert[float32](sample.Int24(v)) }
	case 32:
		return func(v int32) float32 { return sample.Convert[float32](v) }
	}

	div := float32(int64(1) << (bits - 1))

	return func(v int32) float32 { return float32(v) / div }
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrInvalidStreamInfo
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidStreamInfo, info.BitsPerSample)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BlockSizeMax)), nil
}

func newSource(dec frameParser, sampleRate, channels, blockSize int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		blockSize:  max(blockSize, 1024),
	}
}
