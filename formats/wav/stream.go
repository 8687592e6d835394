// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

const readBufferSize = 8192

// byteReader is the byte source the decoder works against: exact reads,
// little-endian integers, peeking and skipping, with a running offset from
// the start of the container.
type byteReader struct {
	br  *bufio.Reader
	off uint64
	tmp [4]byte
}

func newByteReader(r io.Reader) *byteReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, readBufferSize)
	}

	return &byteReader{br: br}
}

// readFull reads len(p) bytes. On a short read it returns the number of bytes
// that did arrive together with ErrEndOfStream.
func (b *byteReader) readFull(p []byte) (int, error) {
	n, err := io.ReadFull(b.br, p)
	b.off += uint64(n)
	if err != nil {
		return n, streamError(err)
	}

	return n, nil
}

func (b *byteReader) readID() ([4]byte, error) {
	var id [4]byte
	if _, err := b.readFull(id[:]); err != nil {
		return id, err
	}

	return id, nil
}

func (b *byteReader) readUint32() (uint32, error) {
	if _, err := b.readFull(b.tmp[:4]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b.tmp[:4]), nil
}

// peek returns the next n bytes without consuming them. The slice is only
// valid until the next read.
func (b *byteReader) peek(n int) ([]byte, error) {
	p, err := b.br.Peek(n)
	if err != nil {
		return nil, streamError(err)
	}

	return p, nil
}

// discard skips n bytes.
func (b *byteReader) discard(n uint64) error {
	for n > 0 {
		step := int(min(n, math.MaxInt32))
		d, err := b.br.Discard(step)
		b.off += uint64(d)
		n -= uint64(d)
		if err != nil {
			return streamError(err)
		}
	}

	return nil
}

func streamError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.WithStack(ErrEndOfStream)
	}

	return errors.Wrap(err, "wav read")
}
