// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-audio/riff"
	"github.com/ik5/riffwave/sample"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HeaderSize is the size of the header WriteHeader emits: RIFF framing,
// fmt chunk and data chunk header.
const HeaderSize = 12 + 8 + FormatSize + 8

// Encoder writes samples of representation T into a WAV container.
//
// The usual sequence is WriteHeader, any number of WriteSamples calls and,
// when the sample count was not known up front, Finalize. An Encoder is not
// safe for concurrent use, and after any error it must be discarded.
type Encoder[T sample.Sample] struct {
	w              io.Writer
	format         Format
	kind           sample.Kind
	samplesWritten int

	// headerAt is where the header starts, -1 until it is written
	headerAt int64
	scratch  []byte
	log      logrus.FieldLogger
}

// NewEncoder prepares an encoder for sampleRate Hz and channels channels of
// representation T. Nothing is written until WriteHeader.
func NewEncoder[T sample.Sample](w io.Writer, sampleRate, channels int, opts ...Option) (*Encoder[T], error) {
	cfg := newConfig(opts)

	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample rate %d", sampleRate)
	}
	if channels <= 0 || channels > math.MaxUint16 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d channels", channels)
	}

	kind := sample.KindOf[T]()
	if bps := uint64(kind.Size()) * uint64(sampleRate) * uint64(channels); bps > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d bytes per second", bps)
	}

	return &Encoder[T]{
		w:        w,
		format:   newFormat(kind, uint32(sampleRate), uint16(channels)),
		kind:     kind,
		headerAt: -1,
		log:      cfg.logger,
	}, nil
}

// Format returns the fmt record the encoder writes.
func (e *Encoder[T]) Format() Format { return e.format }

// SamplesWritten is the number of single-channel samples written so far.
func (e *Encoder[T]) SamplesWritten() int { return e.samplesWritten }

// WriteHeader writes the container header declaring sampleCount samples.
//
// The RIFF size field holds HeaderSize plus the data size. When the count is
// not known yet, pass 0 and call Finalize after the last sample.
func (e *Encoder[T]) WriteHeader(sampleCount int) error {
	if sampleCount < 0 {
		return errors.Wrapf(ErrInvalidArgument, "sample count %d", sampleCount)
	}

	dataSize := uint64(e.kind.Size()) * uint64(sampleCount)
	total := HeaderSize + dataSize
	if uint64(sampleCount) > math.MaxUint32 || total > math.MaxUint32 {
		e.log.WithFields(logrus.Fields{"samples": sampleCount, "kind": e.kind.String()}).Error("header size overflows")
		return errors.Wrapf(ErrOverflow, "%d samples of %s", sampleCount, e.kind)
	}

	hdr := make([]byte, 0, HeaderSize)
	hdr = append(hdr, riff.RiffID[:]...)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(total))
	hdr = append(hdr, riff.WavFormatID[:]...)
	hdr = append(hdr, riff.FmtID[:]...)
	hdr = binary.LittleEndian.AppendUint32(hdr, FormatSize)
	hdr, _ = e.format.AppendBinary(hdr)
	hdr = append(hdr, riff.DataFormatID[:]...)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(dataSize))

	if e.headerAt < 0 {
		e.headerAt = 0
		if s, ok := e.w.(io.Seeker); ok {
			pos, err := s.Seek(0, io.SeekCurrent)
			if err != nil {
				return errors.Wrap(err, "locate header")
			}
			e.headerAt = pos
		}
	}

	if _, err := e.w.Write(hdr); err != nil {
		return errors.Wrap(err, "write header")
	}

	return nil
}

// Finalize rewrites the header with the number of samples actually written
// and leaves the writer positioned at the end of the data.
//
// It needs random access: the writer passed to NewEncoder must implement
// io.WriteSeeker, otherwise ErrUnsupported is returned. Any buffering between
// the encoder and the file must be flushed by the caller first.
func (e *Encoder[T]) Finalize() error {
	ws, ok := e.w.(io.WriteSeeker)
	if !ok {
		return errors.Wrap(ErrUnsupported, "finalizing a header needs an io.WriteSeeker")
	}
	if e.headerAt < 0 {
		return errors.Wrap(ErrInvalidArgument, "finalize before WriteHeader")
	}

	end, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return errors.Wrap(err, "locate end of data")
	}
	if _, err := ws.Seek(e.headerAt, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek to header")
	}
	if err := e.WriteHeader(e.samplesWritten); err != nil {
		return err
	}
	if _, err := ws.Seek(end, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek to end of data")
	}

	return nil
}

// WriteSamples converts every value of src to T and appends it to the data
// chunk. It returns the number of samples written.
func WriteSamples[S, T sample.Sample](e *Encoder[T], src []S) (int, error) {
	size := e.kind.Size()
	written := 0

	for written < len(src) {
		n := min(len(src)-written, scratchSamples)
		raw := e.scratchFor(n * size)
		encodeBlock[S, T](raw, src[written:written+n])

		if _, err := e.w.Write(raw); err != nil {
			return written, errors.Wrap(err, "write samples")
		}

		written += n
		e.samplesWritten += n
	}

	return written, nil
}

func (e *Encoder[T]) scratchFor(n int) []byte {
	if cap(e.scratch) < n {
		e.scratch = make([]byte, n)
	}

	return e.scratch[:n]
}

// encodeBlock converts src to T and serializes it little-endian into raw.
func encodeBlock[S, T sample.Sample](raw []byte, src []S) {
	if same, ok := any(src).([]T); ok && sample.KindOf[T]() != sample.I24 {
		if _, err := binary.Encode(raw, binary.LittleEndian, same); err == nil {
			return
		}
	}

	var zero T

	switch any(zero).(type) {
	case uint8:
		for i, v := range src {
			raw[i] = sample.Convert[uint8](v)
		}
	case int16:
		for i, v := range src {
			binary.LittleEndian.PutUint16(raw[2*i:], uint16(sample.Convert[int16](v)))
		}
	case sample.Int24:
		for i, v := range src {
			sample.PutInt24LE(raw[3*i:], sample.Convert[sample.Int24](v))
		}
	case int32:
		for i, v := range src {
			binary.LittleEndian.PutUint32(raw[4*i:], uint32(sample.Convert[int32](v)))
		}
	case float32:
		for i, v := range src {
			binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(sample.Convert[float32](v)))
		}
	}
}
