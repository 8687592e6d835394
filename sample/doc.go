// SPDX-License-Identifier: EPL-2.0

// Package sample converts between the five numeric sample representations a
// WAV file can carry.
//
// # Representations
//
// The set is closed and ordered by signed-integer width:
//   - U8:  unsigned 8-bit PCM, offset by 128 (uint8)
//   - I16: signed 16-bit PCM (int16)
//   - I24: signed 24-bit PCM (Int24, stored in an int32)
//   - I32: signed 32-bit PCM (int32)
//   - F32: IEEE 754 single precision float (float32)
//
// The Sample constraint admits exactly these Go types, so a conversion to or
// from any other numeric type is rejected by the compiler:
//
//	v := sample.Convert[float32](int16(-16384)) // -0.5
//	b := sample.Convert[uint8](v)              // 64
//
// Kind is the run-time tag for the same set, used where the representation is
// only known after reading a file header.
//
// # Conversion Rules
//
// Every conversion is a total function and bit-reproducible:
//
//   - Identity conversions return the input unchanged.
//   - U8 is first recentred to a signed 8-bit value as int8(v-128), relying
//     on wraparound, then treated as an 8-bit signed integer. Converting to
//     U8 produces the signed 8-bit result, reinterprets its bits as unsigned
//     and adds 128 modulo 256.
//   - Widening between integer widths shifts left by the width difference.
//     The low bits are zero filled; this is a bit-widening, not an amplitude
//     rescale, so the maximum of a narrow type does not map to the maximum of
//     the wide type (int16(32767) becomes int32(0x7FFF0000)).
//   - Narrowing shifts right arithmetically by the width difference. Values
//     are truncated by the shift, never rounded.
//   - Integer to float divides by 2^(bits-1), so full scale maps to [-1, 1).
//   - Float to integer multiplies by 2^(bits-1), rounds half away from zero
//     and clamps to the target range before narrowing. NaN becomes 0.
//
// The shift rules are deliberate: round-trip tolerances elsewhere depend on
// them, and rescaling with MSB replication would change every widened value.
//
// # Performance
//
// Convert is generic over both ends and compiles to a handful of shifts or a
// multiply per value; it does not allocate. ConvertSlice copies directly when
// both element types match.
package sample
