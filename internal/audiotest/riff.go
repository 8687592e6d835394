// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is one RIFF sub-chunk. Size is written as the declared size and may
// deliberately disagree with len(Data).
type Chunk struct {
	ID   string
	Size uint32
	Data []byte
}

// NewChunk returns a chunk whose declared size matches its payload.
func NewChunk(id string, data []byte) Chunk {
	return Chunk{ID: id, Size: uint32(len(data)), Data: data}
}

// Container assembles magic, a RIFF size equal to the file length minus 8,
// the form type and the chunks in order.
func Container(magic, form string, chunks ...Chunk) []byte {
	size := uint32(4)
	for _, c := range chunks {
		size += 8 + uint32(len(c.Data))
	}

	return ContainerWithSize(magic, size, form, chunks...)
}

// ContainerWithSize is Container with an explicit RIFF size field.
func ContainerWithSize(magic string, riffSize uint32, form string, chunks ...Chunk) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(magic)
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString(form)

	for _, c := range chunks {
		buf.WriteString(c.ID)
		binary.Write(buf, binary.LittleEndian, c.Size)
		buf.Write(c.Data)
	}

	return buf.Bytes()
}

// FmtRecord returns a consistent 16-byte fmt record.
func FmtRecord(code, channels uint16, sampleRate uint32, bits uint16) []byte {
	bytesPerSample := uint32(bits / 8)

	return RawFmtRecord(code, channels, sampleRate,
		bytesPerSample*sampleRate*uint32(channels),
		uint16(bytesPerSample)*channels,
		bits)
}

// RawFmtRecord writes every fmt field as given.
func RawFmtRecord(code, channels uint16, sampleRate, bytesPerSecond uint32, blockAlign, bits uint16) []byte {
	b := make([]byte, 0, 16)
	b = binary.LittleEndian.AppendUint16(b, code)
	b = binary.LittleEndian.AppendUint16(b, channels)
	b = binary.LittleEndian.AppendUint32(b, sampleRate)
	b = binary.LittleEndian.AppendUint32(b, bytesPerSecond)
	b = binary.LittleEndian.AppendUint16(b, blockAlign)
	b = binary.LittleEndian.AppendUint16(b, bits)

	return b
}

// WAV builds a canonical 44-byte-header file around raw sample data.
func WAV(code, channels uint16, sampleRate uint32, bits uint16, data []byte) []byte {
	return Container("RIFF", "WAVE",
		NewChunk("fmt ", FmtRecord(code, channels, sampleRate, bits)),
		NewChunk("data", data),
	)
}
