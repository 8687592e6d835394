// SPDX-License-Identifier: EPL-2.0

package riffwave

import (
	"fmt"
	"io"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/formats/wav"
	"github.com/ik5/riffwave/sample"
	"github.com/sirupsen/logrus"
)

// Stats describes what Convert wrote.
type Stats struct {
	SampleRate int
	Channels   int
	Kind       sample.Kind
	Samples    int
}

// Frames is the number of interleaved frames written.
func (s Stats) Frames() int {
	if s.Channels == 0 {
		return 0
	}

	return s.Samples / s.Channels
}

// Pipeline wraps src with the resampler and channel mixer the options ask
// for. Stages that would not change anything are left out.
func Pipeline(src audio.Source, opts ...Option) (audio.Source, error) {
	return pipeline(src, newConfig(opts))
}

func pipeline(src audio.Source, cfg config) (audio.Source, error) {
	out := src

	if cfg.sampleRate != 0 && cfg.sampleRate != src.SampleRate() {
		if cfg.sampleRate < 0 {
			return nil, fmt.Errorf("%w: %d", audio.ErrInvalidRate, cfg.sampleRate)
		}
		out = audio.NewResampler(out, cfg.sampleRate)
	}

	if cfg.channels != 0 && cfg.channels != out.Channels() {
		mixer, err := audio.NewChannelMixer(out, cfg.channels)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		out = mixer
	}

	cfg.logger.WithFields(logrus.Fields{
		"in_rate":      src.SampleRate(),
		"in_channels":  src.Channels(),
		"out_rate":     out.SampleRate(),
		"out_channels": out.Channels(),
	}).Debug("pipeline")

	return out, nil
}

// Convert streams src into w as a WAV file of the given sample kind.
//
// The header is written first with a zero length and rewritten once the
// source is drained, so w must be seekable. src is not closed.
func Convert(w io.WriteSeeker, src audio.Source, kind sample.Kind, opts ...Option) (Stats, error) {
	cfg := newConfig(opts)

	chain, err := pipeline(src, cfg)
	if err != nil {
		return Stats{}, err
	}

	switch kind {
	case sample.U8:
		return encode[uint8](w, chain, cfg)
	case sample.I16:
		return encode[int16](w, chain, cfg)
	case sample.I24:
		return encode[sample.Int24](w, chain, cfg)
	case sample.I32:
		return encode[int32](w, chain, cfg)
	case sample.F32:
		return encode[float32](w, chain, cfg)
	}

	return Stats{}, fmt.Errorf("%w: %d", sample.ErrUnknownKind, kind)
}

func encode[T sample.Sample](w io.WriteSeeker, src audio.Source, cfg config) (Stats, error) {
	enc, err := wav.NewEncoder[T](w, src.SampleRate(), src.Channels(), wav.WithLogger(cfg.logger))
	if err != nil {
		return Stats{}, fmt.Errorf("%w", err)
	}

	stats := Stats{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
		Kind:       sample.KindOf[T](),
	}

	if err := enc.WriteHeader(0); err != nil {
		return stats, fmt.Errorf("%w", err)
	}

	size := max(cfg.bufferSize/stats.Channels, 1) * stats.Channels
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if _, werr := wav.WriteSamples(enc, buf[:n]); werr != nil {
				stats.Samples = enc.SamplesWritten()
				return stats, fmt.Errorf("%w", werr)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Samples = enc.SamplesWritten()
			return stats, fmt.Errorf("read source: %w", err)
		}
	}

	stats.Samples = enc.SamplesWritten()

	if err := enc.Finalize(); err != nil {
		return stats, fmt.Errorf("%w", err)
	}

	cfg.logger.WithFields(logrus.Fields{
		"samples":  stats.Samples,
		"kind":     stats.Kind.String(),
		"rate":     stats.SampleRate,
		"channels": stats.Channels,
	}).Info("wrote WAV")

	return stats, nil
}
