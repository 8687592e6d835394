// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker. Writes past the end grow the
// buffer; writes inside it overwrite.
type WriteSeeker struct {
	buf []byte
	pos int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.buf)) {
		if end > int64(cap(w.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(w.buf))))
			copy(grown, w.buf)
			w.buf = grown
		} else {
			w.buf = w.buf[:end]
		}
	}

	copy(w.buf[w.pos:], p)
	w.pos = end

	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = w.pos + offset
	case io.SeekEnd:
		pos = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}

	if pos < 0 {
		return 0, errors.New("audiotest: negative position")
	}

	w.pos = pos

	return pos, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.buf }

// FailingWriter fails every write after Budget bytes.
type FailingWriter struct {
	Budget int
	Err    error
}

func (f *FailingWriter) Write(p []byte) (int, error) {
	if len(p) <= f.Budget {
		f.Budget -= len(p)
		return len(p), nil
	}

	n := f.Budget
	f.Budget = 0

	return n, f.Err
}
