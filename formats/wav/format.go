// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/riffwave/sample"
	"github.com/pkg/errors"
)

// FormatCode is the wFormatTag field of the fmt chunk.
type FormatCode uint16

const (
	FormatPCM        FormatCode = 0x0001
	FormatIEEEFloat  FormatCode = 0x0003
	FormatALaw       FormatCode = 0x0006
	FormatMuLaw      FormatCode = 0x0007
	FormatExtensible FormatCode = 0xFFFE
)

func (c FormatCode) String() string {
	switch c {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	}

	return fmt.Sprintf("FormatCode(%#04x)", uint16(c))
}

// FormatSize is the size in bytes of the fixed fmt chunk record.
const FormatSize = 16

// Format is the fmt chunk record.
type Format struct {
	Code           FormatCode
	Channels       uint16
	SampleRate     uint32
	BytesPerSecond uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// newFormat derives a consistent record for kind. The caller has already
// checked that the byte rate fits.
func newFormat(kind sample.Kind, sampleRate uint32, channels uint16) Format {
	code := FormatPCM
	if kind.IsFloat() {
		code = FormatIEEEFloat
	}

	size := uint32(kind.Size())

	return Format{
		Code:           code,
		Channels:       channels,
		SampleRate:     sampleRate,
		BytesPerSecond: size * sampleRate * uint32(channels),
		BlockAlign:     uint16(size) * channels,
		BitsPerSample:  uint16(kind.BitDepth()),
	}
}

// parseFormat reads the record at the front of a fmt chunk of the declared
// size and leaves src positioned after the whole chunk, however large it is.
func parseFormat(src *byteReader, chunkSize uint32) (Format, error) {
	if chunkSize < FormatSize {
		return Format{}, errors.Wrapf(ErrInvalidSize, "fmt chunk is %d bytes, need %d", chunkSize, FormatSize)
	}

	rec, err := src.peek(FormatSize)
	if err != nil {
		return Format{}, err
	}

	var f Format
	if err := f.UnmarshalBinary(rec); err != nil {
		return Format{}, err
	}

	if err := src.discard(uint64(chunkSize)); err != nil {
		return Format{}, err
	}

	return f, nil
}

// Validate checks the record for a code this package recognizes, a supported
// bit depth and consistent byte-rate arithmetic. BlockAlign is not checked
// here; NewDecoder rejects layouts it cannot reproduce with ErrUnsupported.
//
// FormatExtensible passes validation; samples in such a file cannot be read.
func (f Format) Validate() error {
	switch f.Code {
	case FormatPCM, FormatIEEEFloat, FormatExtensible:
	default:
		return errors.Wrapf(ErrUnsupported, "format code %s", f.Code)
	}

	if f.Channels == 0 || f.BitsPerSample == 0 || f.SampleRate == 0 {
		return errors.Wrapf(ErrInvalidValue, "channels=%d bits=%d rate=%d",
			f.Channels, f.BitsPerSample, f.SampleRate)
	}

	switch f.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return errors.Wrapf(ErrUnsupported, "%d bits per sample", f.BitsPerSample)
	}

	size := uint64(f.BitsPerSample / 8)
	if want := size * uint64(f.SampleRate) * uint64(f.Channels); uint64(f.BytesPerSecond) != want {
		return errors.Wrapf(ErrInvalidValue, "bytes per second is %d, want %d", f.BytesPerSecond, want)
	}

	return nil
}

// SampleKind returns the representation samples are stored in.
func (f Format) SampleKind() (sample.Kind, error) {
	switch {
	case f.Code == FormatPCM && f.BitsPerSample == 8:
		return sample.U8, nil
	case f.Code == FormatPCM && f.BitsPerSample == 16:
		return sample.I16, nil
	case f.Code == FormatPCM && f.BitsPerSample == 24:
		return sample.I24, nil
	case f.Code == FormatPCM && f.BitsPerSample == 32:
		return sample.I32, nil
	case f.Code == FormatIEEEFloat && f.BitsPerSample == 32:
		return sample.F32, nil
	}

	return 0, errors.Wrapf(ErrUnsupported, "no sample path for %s at %d bits", f.Code, f.BitsPerSample)
}

// FrameSize is the number of bytes one interleaved frame takes.
func (f Format) FrameSize() int {
	return int(f.Channels) * int(f.BitsPerSample/8)
}

// Duration returns how long frames frames play at the sample rate.
func (f Format) Duration(frames int) time.Duration {
	if f.SampleRate == 0 {
		return 0
	}

	return time.Duration(float64(frames) / float64(f.SampleRate) * float64(time.Second))
}

// AudioFormat describes f as a go-audio format.
func (f Format) AudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(f.Channels),
		SampleRate:  int(f.SampleRate),
	}
}

// AppendBinary appends the 16-byte little-endian record to b.
func (f Format) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint16(b, uint16(f.Code))
	b = binary.LittleEndian.AppendUint16(b, f.Channels)
	b = binary.LittleEndian.AppendUint32(b, f.SampleRate)
	b = binary.LittleEndian.AppendUint32(b, f.BytesPerSecond)
	b = binary.LittleEndian.AppendUint16(b, f.BlockAlign)
	b = binary.LittleEndian.AppendUint16(b, f.BitsPerSample)

	return b, nil
}

func (f Format) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, FormatSize))
}

// UnmarshalBinary decodes the record from the first FormatSize bytes of data.
func (f *Format) UnmarshalBinary(data []byte) error {
	if len(data) < FormatSize {
		return errors.Wrapf(ErrInvalidSize, "fmt record is %d bytes, need %d", len(data), FormatSize)
	}

	*f = Format{
		Code:           FormatCode(binary.LittleEndian.Uint16(data[0:2])),
		Channels:       binary.LittleEndian.Uint16(data[2:4]),
		SampleRate:     binary.LittleEndian.Uint32(data[4:8]),
		BytesPerSecond: binary.LittleEndian.Uint32(data[8:12]),
		BlockAlign:     binary.LittleEndian.Uint16(data[12:14]),
		BitsPerSample:  binary.LittleEndian.Uint16(data[14:16]),
	}

	return nil
}
