// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio into an audio.Source using
// github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved into the
// caller's buffer, so memory use is bounded by the largest block size. Samples
// of 8, 16, 24 and 32 bits map onto [-1, 1) exactly like the other decoders;
// other widths are scaled by their own full range.
//
//	src, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
// Only decoding is supported.
package flac
