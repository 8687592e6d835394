// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockStream hands out prepared frames, then io.EOF.
type mockStream struct {
	frames []*frame.Frame
	err    error
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	f := m.frames[0]
	m.frames = m.frames[1:]

	return f, nil
}

// newFrame builds a frame from per-channel samples.
func newFrame(bits uint8, channels ...[]int32) *frame.Frame {
	f := &frame.Frame{
		Header: frame.Header{
			BlockSize:     uint16(len(channels[0])),
			BitsPerSample: bits,
		},
	}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples, NSamples: len(samples)})
	}

	return f
}

func readAll(t *testing.T, src *source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for range 10000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")

	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"garbage": []byte("This is not FLAC data"),
		"empty":   {},
	}

	for name, data := range inputs {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%s) error = nil, want error", name)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{}, 96000, 2, 4608)

	if src.SampleRate() != 96000 {
		t.Errorf("SampleRate() = %d, want 96000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4608*2 {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), 4608*2)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Interleaves(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{
		newFrame(16, []int32{0, 16384, -32768}, []int32{-16384, 8192, 0}),
		newFrame(16, []int32{4096}, []int32{-4096}),
	}}

	want := []float32{0, -0.5, 0.5, 0.25, -1, 0, 0.125, -0.125}

	for _, bufSize := range []int{2, 3, 5, 64} {
		s := *stream
		got := readAll(t, newSource(&s, 44100, 2, 0), bufSize)

		if len(got) != len(want) {
			t.Fatalf("buffer %d: read %v, want %v", bufSize, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("buffer %d: sample %d = %v, want %v", bufSize, i, got[i], want[i])
			}
		}
	}
}

func TestSource_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits uint8
		in   int32
		want float32
	}{
		{8, -64, -0.5},
		{12, 1024, 0.5},
		{16, 8192, 0.25},
		{20, -524288, -1},
		{24, 4194304, 0.5},
		{32, -1 << 30, -0.5},
	}

	for _, tt := range tests {
		src := newSource(&mockStream{frames: []*frame.Frame{newFrame(tt.bits, []int32{tt.in})}}, 8000, 1, 0)

		dst := make([]float32, 4)
		if n, err := src.ReadSamples(dst); n != 1 || err != nil {
			t.Fatalf("%d bits: ReadSamples() = %d, %v", tt.bits, n, err)
		}
		if dst[0] != tt.want {
			t.Errorf("%d bits: got %v, want %v", tt.bits, dst[0], tt.want)
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{}, 8000, 1, 0)

	for range 2 {
		if n, err := src.ReadSamples(make([]float32, 8)); n != 0 || err != io.EOF {
			t.Errorf("ReadSamples() = %d, %v, want 0, io.EOF", n, err)
		}
	}
}

func TestSource_DstSmallerThanFrame(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{frames: []*frame.Frame{newFrame(16, []int32{1}, []int32{2}, []int32{3})}}, 8000, 3, 0)

	if n, err := src.ReadSamples(make([]float32, 2)); n != 0 || err != nil {
		t.Errorf("ReadSamples(2) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_InconsistentFrame(t *testing.T) {
	t.Parallel()

	tests := map[string]*frame.Frame{
		"channel count": newFrame(16, []int32{1, 2}),
		"short subframe": {
			Header:    frame.Header{BlockSize: 4, BitsPerSample: 16},
			Subframes: []*frame.Subframe{{Samples: []int32{1}}, {Samples: []int32{1, 2, 3, 4}}},
		},
	}

	for name, f := range tests {
		src := newSource(&mockStream{frames: []*frame.Frame{f}}, 8000, 2, 0)
		if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, ErrInconsistentFrame) {
			t.Errorf("%s: error = %v, want %v", name, err, ErrInconsistentFrame)
		}
	}
}

func TestSource_ParseError(t *testing.T) {
	t.Parallel()

	boom := errors.New("crc mismatch")
	src := newSource(&mockStream{
		frames: []*frame.Frame{newFrame(16, []int32{100, 200})},
		err:    boom,
	}, 8000, 1, 0)

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 2 || !errors.Is(err, boom) {
		t.Errorf("ReadSamples() = %d, %v, want 2, %v", n, err, boom)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	left := make([]int32, 4096)
	right := make([]int32, 4096)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		frames := make([]*frame.Frame, 16)
		for i := range frames {
			frames[i] = newFrame(16, left, right)
		}
		src := newSource(&mockStream{frames: frames}, 44100, 2, 4096)
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
