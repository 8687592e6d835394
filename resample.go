// SPDX-License-Identifier: EPL-2.0

package riffwave

import (
	"fmt"
	"io"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/sample"
)

// ResampleToMono16 resamples src to targetRate, mixes it to mono and
// collects the whole stream as 16-bit PCM.
//
// It is a convenience for short clips that fit in memory. For files use
// Convert, which streams to disk.
//
// Example:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	pcm16, rate, err := riffwave.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono, err := Pipeline(src,
		WithSampleRate(targetRate),
		WithChannels(1),
	)
	if err != nil {
		return nil, targetRate, err
	}

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, max(bufferSize, 1))

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, n)...)
			sample.ConvertSlice(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, mono.SampleRate(), nil
}
