// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/go-audio/riff"
	"github.com/ik5/riffwave/sample"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// scratchSamples bounds how many samples are staged per read or write call
// on the underlying stream.
const scratchSamples = 4096

// Decoder streams samples out of a WAV container.
//
// NewDecoder consumes everything up to the first byte of sample data. After
// that ReadSamples is the only operation that touches the stream. A Decoder
// is not safe for concurrent use, and after any error it must be discarded.
type Decoder struct {
	src    *byteReader
	format Format
	// kind is 0 when the format is valid but has no sample path
	kind         sample.Kind
	dataSize     uint32
	totalSamples int
	samplesRead  int
	scratch      []byte
	log          logrus.FieldLogger
}

// NewDecoder parses the RIFF/WAVE header from r.
//
// Unknown chunks before the data chunk are skipped by their declared size.
// The data chunk is treated as the last chunk; nothing after it is read.
// The decoder reads r through a buffer and may read past the data chunk, so r
// should not be shared with other readers afterwards.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := newConfig(opts)

	d := &Decoder{
		src: newByteReader(r),
		log: cfg.logger,
	}

	if err := d.parseHeader(); err != nil {
		d.log.WithFields(logrus.Fields{"offset": d.src.off}).WithError(err).Error("rejecting WAV stream")
		return nil, err
	}

	return d, nil
}

func (d *Decoder) parseHeader() error {
	magic, err := d.src.readID()
	if err != nil {
		return err
	}
	if magic != riff.RiffID {
		return errors.Wrapf(ErrInvalidFileType, "container magic %q", magic[:])
	}

	riffSize, err := d.src.readUint32()
	if err != nil {
		return err
	}
	if riffSize > math.MaxUint32-8 {
		return errors.Wrapf(ErrOverflow, "RIFF size %d", riffSize)
	}
	declared := uint64(riffSize) + 8

	form, err := d.src.readID()
	if err != nil {
		return err
	}
	if form != riff.WavFormatID {
		return errors.Wrapf(ErrInvalidFileType, "form type %q", form[:])
	}

	haveFormat := false

	for {
		id, err := d.src.readID()
		if err != nil {
			return missingData(err)
		}
		size, err := d.src.readUint32()
		if err != nil {
			return missingData(err)
		}

		switch id {
		case riff.FmtID:
			f, err := parseFormat(d.src, size)
			if err != nil {
				return missingData(err)
			}
			if err := f.Validate(); err != nil {
				return err
			}
			if f.BlockAlign%f.Channels != 0 || f.BlockAlign/f.Channels != f.BitsPerSample/8 {
				return errors.Wrapf(ErrUnsupported, "block align %d for %d channels of %d bits",
					f.BlockAlign, f.Channels, f.BitsPerSample)
			}
			if haveFormat {
				d.log.WithFields(logrus.Fields{"offset": d.src.off}).Warn("replacing earlier fmt chunk")
			}
			if size > FormatSize {
				d.log.WithFields(logrus.Fields{"size": size}).Debug("fmt chunk carries extra bytes")
			}

			d.format = f
			haveFormat = true

		case riff.DataFormatID:
			if !haveFormat {
				return errors.Wrap(ErrInvalidFileType, "data chunk before fmt chunk")
			}
			d.dataSize = size

			return d.ready(declared)

		default:
			d.log.WithFields(logrus.Fields{"id": string(id[:]), "size": size}).Debug("skipping chunk")
			if err := d.src.discard(uint64(size)); err != nil {
				return missingData(err)
			}
		}
	}
}

// ready runs the checks that need both the fmt record and the data size.
func (d *Decoder) ready(declared uint64) error {
	if end := d.src.off + uint64(d.dataSize); end > declared {
		return errors.Wrapf(ErrInvalidSize, "data chunk ends at %d, past declared size %d", end, declared)
	}

	if frame := uint32(d.format.FrameSize()); d.dataSize%frame != 0 {
		return errors.Wrapf(ErrInvalidSize, "data size %d is not a multiple of the %d byte frame", d.dataSize, frame)
	}

	if d.format.Code == FormatExtensible {
		d.log.Warn("extensible format has no sample path; reads will fail")
	} else {
		kind, err := d.format.SampleKind()
		if err != nil {
			return err
		}
		d.kind = kind
	}

	d.totalSamples = int(uint64(d.dataSize) * 8 / uint64(d.format.BitsPerSample))
	d.samplesRead = 0

	return nil
}

// missingData turns running out of stream while looking for the data chunk
// into a file type error.
func missingData(err error) error {
	if errors.Is(err, ErrEndOfStream) {
		return errors.Wrap(ErrInvalidFileType, "stream ended before the data chunk")
	}

	return err
}

// Format returns the parsed fmt record.
func (d *Decoder) Format() Format { return d.format }

// Kind returns the on-disk sample representation, or 0 when the format has
// none this package can read.
func (d *Decoder) Kind() sample.Kind { return d.kind }

// TotalSamples is the number of single-channel samples in the data chunk.
func (d *Decoder) TotalSamples() int { return d.totalSamples }

// SamplesRead is the number of samples ReadSamples has returned so far.
func (d *Decoder) SamplesRead() int { return d.samplesRead }

// RemainingSamples is the number of samples not yet read.
func (d *Decoder) RemainingSamples() int { return d.totalSamples - d.samplesRead }

// Duration is the play time of the whole data chunk.
func (d *Decoder) Duration() time.Duration {
	return d.format.Duration(d.totalSamples / int(d.format.Channels))
}

// ReadSamples decodes up to len(dst) samples into dst, converting them to T.
//
// Samples are interleaved: channel c of frame k lands at dst[k*C+c] when the
// reads start on a frame boundary. It returns the number of samples stored.
// Once every sample has been read it returns 0 and a nil error.
//
// If the stream ends early the samples decoded before that point are kept,
// counted and returned together with ErrEndOfStream.
func ReadSamples[T sample.Sample](d *Decoder, dst []T) (int, error) {
	if d.samplesRead == d.totalSamples {
		return 0, nil
	}
	if d.kind == 0 {
		return 0, errors.Wrapf(ErrUnsupported, "no sample path for %s", d.format.Code)
	}

	count := min(len(dst), d.RemainingSamples())
	size := d.kind.Size()
	read := 0

	for read < count {
		n := min(count-read, scratchSamples)
		raw := d.scratchFor(n * size)

		got, err := d.src.readFull(raw)
		whole := got / size
		decodeBlock(d.kind, dst[read:read+whole], raw[:whole*size])

		read += whole
		d.samplesRead += whole

		if err != nil {
			d.log.WithFields(logrus.Fields{"read": d.samplesRead, "total": d.totalSamples}).Error("sample data truncated")
			return read, err
		}
	}

	return read, nil
}

func (d *Decoder) scratchFor(n int) []byte {
	if cap(d.scratch) < n {
		d.scratch = make([]byte, n)
	}

	return d.scratch[:n]
}

// decodeBlock converts raw samples stored as kind into dst.
func decodeBlock[T sample.Sample](kind sample.Kind, dst []T, raw []byte) {
	// same representation: one bulk little-endian decode. I24 has no
	// fixed-size Go type with a 3-byte layout and takes the slow path.
	if kind == sample.KindOf[T]() && kind != sample.I24 {
		if _, err := binary.Decode(raw, binary.LittleEndian, dst); err == nil {
			return
		}
	}

	switch kind {
	case sample.U8:
		for i := range dst {
			dst[i] = sample.Convert[T](raw[i])
		}
	case sample.I16:
		for i := range dst {
			dst[i] = sample.Convert[T](int16(binary.LittleEndian.Uint16(raw[2*i:])))
		}
	case sample.I24:
		for i := range dst {
			dst[i] = sample.Convert[T](sample.DecodeInt24LE(raw[3*i:]))
		}
	case sample.I32:
		for i := range dst {
			dst[i] = sample.Convert[T](int32(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	case sample.F32:
		for i := range dst {
			dst[i] = sample.Convert[T](math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	}
}
