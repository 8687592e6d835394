// SPDX-License-Identifier: EPL-2.0

// Package wav provides a streaming RIFF/WAVE decoder and encoder.
//
// # Supported Formats
//
//   - PCM unsigned 8-bit, signed 16, 24 (3-byte packed) and 32-bit
//   - IEEE float 32-bit
//   - Any channel count and sample rate the header fields can hold
//
// A-law, mu-law and WAVE_FORMAT_EXTENSIBLE sample data are rejected with
// ErrUnsupported. Extensible headers still parse, so their format can be
// inspected, but reading their samples fails. LIST and other metadata chunks
// are skipped.
//
// # Decoding
//
// NewDecoder walks the chunk headers up to the data chunk. ReadSamples then
// streams samples in any representation from the sample package, converting
// on the fly:
//
//	dec, err := wav.NewDecoder(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	for dec.RemainingSamples() > 0 {
//	    n, err := wav.ReadSamples(dec, buf)
//	    if err != nil {
//	        // truncated or unreadable data
//	    }
//	    // process buf[:n]
//	}
//
// A sample is a single channel value; frames are interleaved in dst.
// ReadSamples returns 0 with a nil error once the data chunk is exhausted.
//
// # Encoding
//
// The encoder's representation is its type parameter. WriteSamples accepts a
// slice of any representation and converts it:
//
//	enc, err := wav.NewEncoder[sample.Int24](file, 48000, 2)
//	if err != nil {
//	    // Handle error
//	}
//	enc.WriteHeader(0)             // count not known yet
//	wav.WriteSamples(enc, floats) // []float32 -> 24-bit PCM
//	enc.Finalize()                // file must be an io.WriteSeeker
//
// When the sample count is known in advance, pass it to WriteHeader and skip
// Finalize; the output then works with plain io.Writer sinks such as pipes.
//
// WriteWAV16 wraps the common case of a mono 16-bit file from []int16.
//
// # Error Handling
//
// Errors wrap one of the package sentinels and can be matched with
// errors.Is:
//   - ErrInvalidFileType: bad RIFF/WAVE magic, or no fmt/data chunk
//   - ErrInvalidSize: short fmt chunk, misaligned or overlong data chunk
//   - ErrInvalidValue: inconsistent fmt record
//   - ErrUnsupported: recognized but unimplemented format
//   - ErrOverflow: a size that does not fit its 32-bit field
//   - ErrInvalidArgument: encoder parameters out of range
//   - ErrEndOfStream: stream truncated inside a record or sample
//
// Nothing is retried. A Decoder or Encoder that returned an error must be
// discarded.
//
// # Diagnostics
//
// WithLogger attaches a logrus.FieldLogger that receives skipped chunks,
// tolerated oddities and rejections. It does not change control flow.
//
// # go-audio Interop
//
// ReadIntBuffer, ReadFloat32Buffer and WriteIntBuffer move samples between
// the codec and github.com/go-audio/audio buffers. NewSource and
// SourceDecoder expose a Decoder as an audio.Source for the processing
// pipeline in the audio package.
//
// # File Format
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     total size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      16    code, channels, rate, bytes/s, block align, bits
//	36      4     "data"
//	40      4     data size
//	44      N     interleaved little-endian samples
package wav
