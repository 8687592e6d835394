// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// exposes the sound data as an audio.Source of float32 samples in [-1, 1).
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit, big-endian as AIFF stores them
//   - Mono and multi-channel
//   - Any sample rate
//
// Other bit depths are rejected with ErrUnsupportedBitDepth.
//
// # Decoding AIFF Files
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// go-audio needs random access. When the reader given to Decode is not an
// io.ReadSeeker the whole input is read into memory first.
package aiff
