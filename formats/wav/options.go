// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Decoder or Encoder.
type Option func(*config)

type config struct {
	logger logrus.FieldLogger
}

// WithLogger sends diagnostics about malformed or unusual input to l.
// Skipped chunks are logged at debug level, tolerated oddities at warn level
// and rejected input at error level. Without it diagnostics are discarded.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// discardLogger drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func newConfig(opts []Option) config {
	c := config{logger: discardLogger()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
