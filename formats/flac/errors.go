package flac

import "errors"

var (
	// ErrInvalidStreamInfo indicates a STREAMINFO block this package cannot decode
	ErrInvalidStreamInfo = errors.New("invalid FLAC stream info")

	// ErrInconsistentFrame indicates a frame that disagrees with the stream info
	ErrInconsistentFrame = errors.New("inconsistent FLAC frame")
)
