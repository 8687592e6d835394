// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"log"
	"os"

	"github.com/ik5/riffwave"
	"github.com/ik5/riffwave/formats/vorbis"
	"github.com/ik5/riffwave/sample"
)

// ExampleDecoder_Decode converts an Ogg Vorbis file to a 16-bit mono WAV at 16 kHz.
func ExampleDecoder_Decode() {
	in, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := vorbis.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	_, err = riffwave.Convert(out, src, sample.I16,
		riffwave.WithSampleRate(16000),
		riffwave.WithChannels(1),
	)
	if err != nil {
		log.Fatal(err)
	}
}
