// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/riffwave/internal/audiotest"
	"github.com/ik5/riffwave/sample"
	"github.com/stretchr/testify/require"
)

func TestEncoder_SineRoundTrip(t *testing.T) {
	t.Parallel()

	const (
		rate  = 44100
		count = 3 * rate
	)

	phase := func(i int) float64 { return 2 * math.Pi * 440 * float64(i) / rate }

	src := make([]float32, count)
	for i := range src {
		src[i] = float32(math.Sin(phase(i)))
	}

	var out bytes.Buffer
	enc, err := NewEncoder[int16](&out, rate, 1)
	require.NoError(t, err)
	require.NoError(t, enc.WriteHeader(count))

	n, err := WriteSamples(enc, src)
	require.NoError(t, err)
	require.Equal(t, count, n)

	b := out.Bytes()
	require.Len(t, b, HeaderSize+2*count)
	require.Equal(t, uint32(44+3*44100*2), binary.LittleEndian.Uint32(b[4:8]))
	require.Equal(t, uint32(2*count), binary.LittleEndian.Uint32(b[40:44]))

	dec, err := NewDecoder(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, count, dec.TotalSamples())

	got := make([]float32, count)
	n, err = ReadSamples(dec, got)
	require.NoError(t, err)
	require.Equal(t, count, n)

	for i, v := range got {
		require.InDelta(t, math.Sin(phase(i)), float64(v), 1e-4, "sample %d", i)
	}
}

func TestEncoder_HeaderLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hdr  func(w io.Writer) error
		fmt  []byte
		data uint32
	}{
		{
			"u8 mono",
			func(w io.Writer) error { return headerFor[uint8](w, 8000, 1, 10) },
			audiotest.FmtRecord(1, 1, 8000, 8), 10,
		},
		{
			"i24 stereo",
			func(w io.Writer) error { return headerFor[sample.Int24](w, 48000, 2, 4) },
			audiotest.FmtRecord(1, 2, 48000, 24), 12,
		},
		{
			"f32 quad",
			func(w io.Writer) error { return headerFor[float32](w, 96000, 4, 8) },
			audiotest.FmtRecord(3, 4, 96000, 32), 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, tt.hdr(&out))

			b := out.Bytes()
			require.Len(t, b, HeaderSize)
			require.Equal(t, "RIFF", string(b[0:4]))
			require.Equal(t, HeaderSize+tt.data, binary.LittleEndian.Uint32(b[4:8]))
			require.Equal(t, "WAVE", string(b[8:12]))
			require.Equal(t, "fmt ", string(b[12:16]))
			require.Equal(t, uint32(16), binary.LittleEndian.Uint32(b[16:20]))
			require.Equal(t, tt.fmt, b[20:36])
			require.Equal(t, "data", string(b[36:40]))
			require.Equal(t, tt.data, binary.LittleEndian.Uint32(b[40:44]))
		})
	}
}

func headerFor[T sample.Sample](w io.Writer, rate, channels, count int) error {
	enc, err := NewEncoder[T](w, rate, channels)
	if err != nil {
		return err
	}

	return enc.WriteHeader(count)
}

func TestNewEncoder_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
	}{
		{"zero rate", 0, 1},
		{"negative rate", -8000, 1},
		{"rate above 32 bits", math.MaxUint32 + 1, 1},
		{"zero channels", 8000, 0},
		{"too many channels", 8000, math.MaxUint16 + 1},
		{"byte rate overflow", 1 << 30, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc, err := NewEncoder[float32](io.Discard, tt.rate, tt.channels)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.Nil(t, enc)
		})
	}
}

func TestEncoder_WriteHeaderErrors(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder[int32](io.Discard, 44100, 1)
	require.NoError(t, err)

	require.ErrorIs(t, enc.WriteHeader(-1), ErrInvalidArgument)
	require.ErrorIs(t, enc.WriteHeader(math.MaxUint32/4), ErrOverflow)
	require.NoError(t, enc.WriteHeader(math.MaxUint32/4-11))
}

func TestEncoder_Finalize(t *testing.T) {
	t.Parallel()

	ws := &audiotest.WriteSeeker{}
	_, err := ws.Write([]byte("pre:"))
	require.NoError(t, err)

	enc, err := NewEncoder[int16](ws, 8000, 2)
	require.NoError(t, err)
	require.NoError(t, enc.WriteHeader(0))

	src := make([]int16, 100)
	for i := range src {
		src[i] = int16(i - 50)
	}
	_, err = WriteSamples(enc, src)
	require.NoError(t, err)
	require.Equal(t, 100, enc.SamplesWritten())

	require.NoError(t, enc.Finalize())

	pos, err := ws.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(4+HeaderSize+200), pos)

	require.Equal(t, []byte("pre:"), ws.Bytes()[:4])

	b := ws.Bytes()[4:]
	require.Equal(t, uint32(HeaderSize+200), binary.LittleEndian.Uint32(b[4:8]))
	require.Equal(t, uint32(200), binary.LittleEndian.Uint32(b[40:44]))

	dec, err := NewDecoder(bytes.NewReader(b))
	require.NoError(t, err)

	got := make([]int16, 200)
	n, err := ReadSamples(dec, got)
	require.NoError(t, err)
	require.Equal(t, src, got[:n])
}

func TestEncoder_FinalizeErrors(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder[int16](&bytes.Buffer{}, 8000, 1)
	require.NoError(t, err)
	require.NoError(t, enc.WriteHeader(0))
	require.ErrorIs(t, enc.Finalize(), ErrUnsupported)

	seekable, err := NewEncoder[int16](&audiotest.WriteSeeker{}, 8000, 1)
	require.NoError(t, err)
	require.ErrorIs(t, seekable.Finalize(), ErrInvalidArgument)
}

func TestWriteSamples_Converts(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	enc, err := NewEncoder[int16](&out, 8000, 1)
	require.NoError(t, err)

	_, err = WriteSamples(enc, []float32{0.5, -1, 1, float32(math.NaN())})
	require.NoError(t, err)
	require.Equal(t, pcm16(16384, -32768, 32767, 0), out.Bytes())

	out.Reset()
	u8, err := NewEncoder[uint8](&out, 8000, 1)
	require.NoError(t, err)

	_, err = WriteSamples(u8, []int16{math.MinInt16, 0, math.MaxInt16})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 128, 255}, out.Bytes())
}

func TestWriteSamples_WriterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	enc, err := NewEncoder[int16](&audiotest.FailingWriter{Budget: 10, Err: boom}, 8000, 1)
	require.NoError(t, err)

	n, err := WriteSamples(enc, make([]int16, 8000))
	require.ErrorIs(t, err, boom)
	require.Zero(t, n)
}

func TestRoundTrip_NativeKinds(t *testing.T) {
	t.Parallel()

	t.Run("u8", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, []uint8{0, 1, 127, 128, 254, 255})
	})
	t.Run("i16", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, []int16{math.MinInt16, -1, 0, 1, math.MaxInt16, 1234})
	})
	t.Run("i24", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, []sample.Int24{sample.MinInt24, -1, 0, 1, sample.MaxInt24, -654321})
	})
	t.Run("i32", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, []int32{math.MinInt32, -1, 0, 1, math.MaxInt32, 99999999})
	})
	t.Run("f32", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, []float32{-1, -0.5, 0, 0.125, 0.999, 1})
	})
	t.Run("long i16", func(t *testing.T) {
		t.Parallel()

		vals := make([]int16, 3*scratchSamples+18)
		for i := range vals {
			vals[i] = int16(i * 31)
		}
		roundTrip(t, vals)
	})
}

// roundTrip encodes vals as their own kind in stereo and decodes them back.
func roundTrip[T sample.Sample](t *testing.T, vals []T) {
	t.Helper()

	var out bytes.Buffer
	enc, err := NewEncoder[T](&out, 44100, 2)
	require.NoError(t, err)
	require.NoError(t, enc.WriteHeader(len(vals)))
	_, err = WriteSamples(enc, vals)
	require.NoError(t, err)

	dec, err := NewDecoder(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, sample.KindOf[T](), dec.Kind())

	got := make([]T, len(vals)+1)
	n, err := ReadSamples(dec, got)
	require.NoError(t, err)
	require.Equal(t, vals, got[:n])
}

func TestRoundTrip_FloatThroughIntegers(t *testing.T) {
	t.Parallel()

	src := make([]float32, 1000)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.01))
	}

	check := func(t *testing.T, encoded []byte, tolerance float64) {
		dec, err := NewDecoder(bytes.NewReader(encoded))
		require.NoError(t, err)

		got := make([]float32, len(src))
		_, err = ReadSamples(dec, got)
		require.NoError(t, err)

		for i := range src {
			require.InDelta(t, src[i], got[i], tolerance)
		}
	}

	t.Run("i16", func(t *testing.T) {
		check(t, encodeAs[int16](t, src), 1.0/(1<<15))
	})
	t.Run("i24", func(t *testing.T) {
		check(t, encodeAs[sample.Int24](t, src), 1.0/(1<<22))
	})
	t.Run("u8", func(t *testing.T) {
		check(t, encodeAs[uint8](t, src), 1.0/(1<<7))
	})
}

func encodeAs[T sample.Sample](t *testing.T, src []float32) []byte {
	t.Helper()

	var out bytes.Buffer
	enc, err := NewEncoder[T](&out, 8000, 1)
	require.NoError(t, err)
	require.NoError(t, enc.WriteHeader(len(src)))
	_, err = WriteSamples(enc, src)
	require.NoError(t, err)

	return out.Bytes()
}

func BenchmarkWriteSamples(b *testing.B) {
	src := make([]float32, 44100*2)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(src) * 2))

	for b.Loop() {
		enc, _ := NewEncoder[int16](io.Discard, 44100, 2)
		_ = enc.WriteHeader(len(src))
		_, _ = WriteSamples(enc, src)
	}
}
