// SPDX-License-Identifier: EPL-2.0

// Package riffwave converts audio into RIFF/WAVE files.
//
// The work is split across subpackages:
//   - sample: the five PCM and float sample representations and the
//     conversions between them
//   - formats/wav: the streaming WAV decoder and encoder
//   - formats/mp3, formats/vorbis, formats/aiff, formats/flac: decoders that
//     expose other formats as an audio.Source
//   - audio: the Source pipeline (resampling, channel mixing, interleaving)
//
// This package ties them together.
//
// # Quick Start
//
// Convert drains any audio.Source into a WAV of the chosen representation,
// optionally resampling and remixing on the way:
//
//	reg := riffwave.NewRegistry()
//	src, err := reg.Open(riffwave.FormatOf(name), in)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	stats, err := riffwave.Convert(out, src, sample.I24,
//	    riffwave.WithSampleRate(48000),
//	    riffwave.WithChannels(2),
//	)
//
// out must be an io.WriteSeeker because the header is finalized after the
// last sample.
//
// ResampleToMono16 covers the common speech case of collecting a short clip
// as mono 16-bit PCM in memory.
//
// # Audio Processing Pipeline
//
// Pipeline returns the stage chain Convert uses, for callers that want to
// read the samples themselves:
//
//	mono, err := riffwave.Pipeline(src, riffwave.WithSampleRate(16000), riffwave.WithChannels(1))
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// See the individual subpackages for more detailed documentation.
package riffwave
