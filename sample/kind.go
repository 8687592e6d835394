// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"strings"
)

// Kind identifies a sample representation at run time.
type Kind uint8

const (
	U8 Kind = iota + 1
	I16
	I24
	I32
	F32
)

var kindNames = [...]string{
	U8:  "u8",
	I16: "i16",
	I24: "i24",
	I32: "i32",
	F32: "f32",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the five known representations.
func (k Kind) Valid() bool {
	return k >= U8 && k <= F32
}

// BitDepth returns the number of bits per sample, 0 for an invalid Kind.
func (k Kind) BitDepth() int {
	switch k {
	case U8:
		return 8
	case I16:
		return 16
	case I24:
		return 24
	case I32, F32:
		return 32
	}

	return 0
}

// Size returns the number of bytes one sample occupies in a WAV data chunk.
// I24 is tightly packed in 3 bytes.
func (k Kind) Size() int {
	return k.BitDepth() / 8
}

// IsFloat reports whether k is the floating point representation.
func (k Kind) IsFloat() bool {
	return k == F32
}

// ParseKind maps names such as "i16" or "f32" to a Kind. Matching is case
// insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := U8; k <= F32; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
