// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples are passed through without
// conversion. The channel count and sample rate are those of the stream.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
// Reads are trimmed to whole frames. Only decoding is supported.
package vorbis
