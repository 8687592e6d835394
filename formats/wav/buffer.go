// SPDX-License-Identifier: EPL-2.0

package wav

import (
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/riffwave/sample"
	"github.com/pkg/errors"
)

// ReadIntBuffer fills buf.Data with samples at the stored integer width, the
// way go-audio represents PCM: 8-bit samples stay unsigned (0..255), wider
// ones are sign extended. buf.Format and buf.SourceBitDepth are set from the
// file. Float data has no integer form and returns ErrUnsupported.
func ReadIntBuffer(d *Decoder, buf *goaudio.IntBuffer) (int, error) {
	if buf.Format == nil {
		buf.Format = d.format.AudioFormat()
	}
	buf.SourceBitDepth = int(d.format.BitsPerSample)

	switch d.kind {
	case sample.U8:
		return readInts[uint8](d, buf.Data)
	case sample.I16:
		return readInts[int16](d, buf.Data)
	case sample.I24:
		return readInts[sample.Int24](d, buf.Data)
	case sample.I32:
		return readInts[int32](d, buf.Data)
	}

	return 0, errors.Wrapf(ErrUnsupported, "%s data has no integer buffer form", d.format.Code)
}

func readInts[T uint8 | int16 | sample.Int24 | int32](d *Decoder, dst []int) (int, error) {
	tmp := make([]T, min(len(dst), scratchSamples))
	read := 0

	for read < len(dst) {
		n, err := ReadSamples(d, tmp[:min(len(tmp), len(dst)-read)])
		for i := range n {
			dst[read+i] = int(tmp[i])
		}
		read += n

		if err != nil || n == 0 {
			return read, err
		}
	}

	return read, nil
}

// ReadFloat32Buffer fills buf.Data with samples converted to float32.
func ReadFloat32Buffer(d *Decoder, buf *goaudio.Float32Buffer) (int, error) {
	if buf.Format == nil {
		buf.Format = d.format.AudioFormat()
	}
	buf.SourceBitDepth = int(d.format.BitsPerSample)

	return ReadSamples(d, buf.Data)
}

// WriteIntBuffer encodes buf.Data, interpreting each value at
// buf.SourceBitDepth with the go-audio conventions ReadIntBuffer produces.
func WriteIntBuffer[T sample.Sample](e *Encoder[T], buf *goaudio.IntBuffer) (int, error) {
	switch buf.SourceBitDepth {
	case 8:
		return writeInts[uint8](e, buf.Data)
	case 16:
		return writeInts[int16](e, buf.Data)
	case 24:
		return writeInts[sample.Int24](e, buf.Data)
	case 32:
		return writeInts[int32](e, buf.Data)
	}

	return 0, errors.Wrapf(ErrInvalidArgument, "buffer bit depth %d", buf.SourceBitDepth)
}

func writeInts[S uint8 | int16 | sample.Int24 | int32, T sample.Sample](e *Encoder[T], src []int) (int, error) {
	tmp := make([]S, min(len(src), scratchSamples))
	written := 0

	for written < len(src) {
		n := min(len(tmp), len(src)-written)
		for i := range n {
			tmp[i] = S(src[written+i])
		}

		w, err := WriteSamples(e, tmp[:n])
		written += w
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
