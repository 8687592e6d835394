// SPDX-License-Identifier: EPL-2.0

package riffwave

import (
	"io"

	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 4096

// Option configures Convert.
type Option func(*config)

type config struct {
	sampleRate int
	channels   int
	bufferSize int
	logger     logrus.FieldLogger
}

// WithSampleRate resamples the output to hz. By default the source rate is
// kept.
func WithSampleRate(hz int) Option {
	return func(c *config) { c.sampleRate = hz }
}

// WithChannels mixes the output to n channels. By default the source layout
// is kept.
func WithChannels(n int) Option {
	return func(c *config) { c.channels = n }
}

// WithBufferSize sets how many samples are moved per read. It is rounded
// down to whole frames.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithLogger receives the pipeline layout and the encoder's diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := config{
		bufferSize: defaultBufferSize,
		logger:     discard,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
