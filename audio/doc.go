// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that sit around the codecs.
//
//   - Source, the interface every decoder and processor implements
//   - Resampler for sample rate conversion
//   - ChannelMixer for changing the channel count
//   - Registry for looking up decoders by format name
//   - Interleave and Deinterleave for planar/interleaved buffers
//   - SineSource, a test tone generator
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. Sources chain: a Resampler or
// ChannelMixer wraps another Source and closes it on Close.
//
// # Resampling
//
//	resampler := audio.NewResampler(source, 16000)
//	n, err := resampler.ReadSamples(buf)
//
// Interpolation is Catmull-Rom over four neighbouring frames. When
// downsampling, a one-pole low-pass runs on the input first. Positions are
// computed exactly from the frame index, so N input frames always give
// ceil(N*dst/src) output frames.
//
// # Channel Mixing
//
//	stereo, err := audio.NewChannelMixer(source, 2)
//	mono := audio.NewMonoMixer(source)
//
// Downmixing averages, upmixing repeats channels. See ChannelMixer for the
// exact mapping.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.SourceDecoder{})
//	src, err := registry.Open("wav", file)
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. The final
// samples may arrive together with io.EOF:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
