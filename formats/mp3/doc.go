// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 audio into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit stereo PCM. The source converts it to float32 in [-1, 1) one whole
// frame at a time:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, src.BufSize())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Output is always stereo at the file's sample rate. Use audio.NewChannelMixer
// and audio.NewResampler, or riffwave.Convert, to reshape it.
//
// Only decoding is supported.
package mp3
