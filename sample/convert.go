// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// Sample is the closed set of Go types a WAV sample can be decoded into or
// encoded from.
type Sample interface {
	uint8 | int16 | Int24 | int32 | float32
}

// KindOf returns the run-time tag for T.
func KindOf[T Sample]() Kind {
	var zero T

	switch any(zero).(type) {
	case uint8:
		return U8
	case int16:
		return I16
	case Int24:
		return I24
	case int32:
		return I32
	case float32:
		return F32
	}

	panic("sample: unreachable representation")
}

// Convert converts v from representation From to representation To using the
// rules described in the package documentation.
func Convert[To, From Sample](v From) To {
	switch x := any(v).(type) {
	case uint8:
		return fromInt[To](int32(int8(x-128)), 8)
	case int16:
		return fromInt[To](int32(x), 16)
	case Int24:
		return fromInt[To](int32(x), 24)
	case int32:
		return fromInt[To](x, 32)
	case float32:
		return fromFloat[To](x)
	}

	panic("sample: unreachable representation")
}

// ConvertSlice converts min(len(dst), len(src)) values and returns the count.
func ConvertSlice[To, From Sample](dst []To, src []From) int {
	if same, ok := any(dst).([]From); ok {
		return copy(same, src)
	}

	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Convert[To](src[i])
	}

	return n
}

// fromInt converts a signed integer of the given bit width.
func fromInt[To Sample](v int32, bits int) To {
	var out To

	switch any(out).(type) {
	case float32:
		return To(float32(float64(v) / float64(int64(1)<<(bits-1))))
	case uint8:
		return To(uint8(int8(shift(v, bits, 8))) + 128)
	case int16:
		return To(shift(v, bits, 16))
	case Int24:
		return To(shift(v, bits, 24))
	case int32:
		return To(shift(v, bits, 32))
	}

	panic("sample: unreachable representation")
}

func fromFloat[To Sample](f float32) To {
	var out To

	switch any(out).(type) {
	case float32:
		return To(f)
	case uint8:
		return To(uint8(int8(quantize(f, 8))) + 128)
	case int16:
		return To(quantize(f, 16))
	case Int24:
		return To(quantize(f, 24))
	case int32:
		return To(quantize(f, 32))
	}

	panic("sample: unreachable representation")
}

// shift moves v from one signed width to another: left to widen, arithmetic
// right to narrow.
func shift(v int32, from, to int) int32 {
	switch {
	case to > from:
		return v << (to - from)
	case to < from:
		return v >> (from - to)
	}

	return v
}

// quantize scales f to a signed integer of the given width, rounding half
// away from zero and saturating at the width's limits.
func quantize(f float32, bits int) int32 {
	if math.IsNaN(float64(f)) {
		return 0
	}

	scale := float64(int64(1) << (bits - 1))
	r := math.Round(float64(f) * scale)

	if r > scale-1 {
		return int32(scale - 1)
	}
	if r < -scale {
		return int32(-scale)
	}

	return int32(r)
}
