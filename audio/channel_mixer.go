// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer changes the channel count of a source.
//
// Output channel c is the average of every input channel i with
// i % out == c when there are more inputs than outputs, so any layout
// downmixes to mono by plain averaging. With fewer inputs, output channel c
// copies input c % in, so mono is duplicated to every output.
type ChannelMixer struct {
	src Source
	in  int
	out int
	tmp []float32
}

// NewChannelMixer wraps src so that it yields channels channels.
func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return &ChannelMixer{
		src: src,
		in:  src.Channels(),
		out: channels,
		tmp: make([]float32, 4096),
	}, nil
}

// NewMonoMixer averages every channel of src into one.
func NewMonoMixer(src Source) *ChannelMixer {
	m, _ := NewChannelMixer(src, 1)
	return m
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with whole output frames. len(dst) must be a
// multiple of the output channel count.
func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if m.in == m.out {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) / m.out * m.in

	// grow tmp when needed, never shrink it
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / m.in
	if frames == 0 {
		return 0, err
	}

	switch {
	case m.out == 1 && m.in == 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}

	case m.in > m.out:
		m.fold(dst, frames)

	default:
		for f := range frames {
			frame := m.tmp[f*m.in : (f+1)*m.in]
			for c := range m.out {
				dst[f*m.out+c] = frame[c%m.in]
			}
		}
	}

	return frames * m.out, err
}

func (m *ChannelMixer) fold(dst []float32, frames int) {
	for f := range frames {
		frame := m.tmp[f*m.in : (f+1)*m.in]
		out := dst[f*m.out : (f+1)*m.out]

		for c := range out {
			sum, count := float32(0), 0
			for i := c; i < m.in; i += m.out {
				sum += frame[i]
				count++
			}
			out[c] = sum / float32(count)
		}
	}
}
