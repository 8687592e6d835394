// SPDX-License-Identifier: EPL-2.0

package sample

// Int24 is a signed 24-bit PCM value held in the low 24 bits of an int32.
// Values outside [MinInt24, MaxInt24] are never produced by Convert.
type Int24 int32

const (
	MaxInt24 Int24 = 1<<23 - 1
	MinInt24 Int24 = -1 << 23
)

// DecodeInt24LE reads a 3-byte little-endian two's complement value.
func DecodeInt24LE(b []byte) Int24 {
	_ = b[2]
	// place the 24 bits at the top of an int32 so the shift sign-extends
	return Int24(int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8)
}

// PutInt24LE stores the low 24 bits of v into b as little-endian.
func PutInt24LE(b []byte, v Int24) {
	_ = b[2]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}
