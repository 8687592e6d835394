// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/ik5/riffwave/internal/audiotest"
)

var (
	newMockSource     = audiotest.NewMockSource
	newSilentSource   = audiotest.NewSilentSource
	newConstantSource = audiotest.NewConstantSource
	newSineSource     = audiotest.NewSineSource
)

var errBroken = errors.New("broken source")

// brokenSource yields good frames and then a read error.
type brokenSource struct {
	good     int
	channels int
	closeErr error
}

func (b *brokenSource) SampleRate() int { return 8000 }
func (b *brokenSource) Channels() int   { return b.channels }
func (b *brokenSource) BufSize() int    { return 64 }
func (b *brokenSource) Close() error    { return b.closeErr }

func (b *brokenSource) ReadSamples(dst []float32) (int, error) {
	if b.good == 0 {
		return 0, errBroken
	}

	n := min(b.good, len(dst)/b.channels)
	for i := range n * b.channels {
		dst[i] = 0.25
	}
	b.good -= n

	return n * b.channels, nil
}

// drain reads src to io.EOF or another error.
func drain(src Source, bufSize int) ([]float32, error) {
	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			return out, err
		}
	}
}
