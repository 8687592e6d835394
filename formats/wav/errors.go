package wav

import "github.com/pkg/errors"

var (
	// ErrInvalidFileType means the stream is not RIFF/WAVE or lacks a fmt or
	// data chunk.
	ErrInvalidFileType = errors.New("not a WAV file")

	// ErrInvalidSize means a chunk is smaller than its record, the data chunk
	// is not frame aligned, or it overruns the declared file size.
	ErrInvalidSize = errors.New("invalid WAV chunk size")

	// ErrInvalidValue means the fmt record is internally inconsistent.
	ErrInvalidValue = errors.New("invalid WAV format value")

	// ErrUnsupported means the format is recognized but has no sample path.
	ErrUnsupported = errors.New("unsupported WAV format")

	// ErrOverflow means a size field would exceed its 32-bit width.
	ErrOverflow = errors.New("WAV size overflow")

	// ErrInvalidArgument means encoder parameters are out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEndOfStream means the stream ended inside a record or sample.
	ErrEndOfStream = errors.New("unexpected end of WAV stream")
)
