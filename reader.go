package binpack

import (
	"bufio"
	"io"
)

// Reader is the byte source a session decodes from. Read fills all of p or
// fails with an IOError reporting how many additional bytes the medium could
// not supply.
type Reader interface {
	Read(p []byte) error
	// Peek returns the next n bytes without consuming them, when the
	// medium buffers at least that much. A false return is not an error;
	// callers fall back to Read.
	Peek(n int) ([]byte, bool)
	// Consume advances past n bytes previously returned by Peek.
	Consume(n int)
}

// borrower is implemented by sources whose entire input is one in-memory
// buffer, allowing zero-copy reads that alias it.
type borrower interface {
	Borrow(n int) ([]byte, error)
}

// SliceReader reads from a complete in-memory buffer. It is the only source
// that supports borrowing decode.
type SliceReader struct {
	data []byte
	pos  int
}

func NewSliceReader(data []byte) *SliceReader {
	return &SliceReader{data: data}
}

// Remaining reports the bytes not yet consumed.
func (r *SliceReader) Remaining() int { return len(r.data) - r.pos }

func (r *SliceReader) Read(p []byte) error {
	if rem := r.Remaining(); rem < len(p) {
		r.pos = len(r.data)
		return &IOError{Op: "read", Needed: len(p) - rem, Err: io.ErrUnexpectedEOF}
	}
	copy(p, r.data[r.pos:])
	r.pos += len(p)
	return nil
}

func (r *SliceReader) Peek(n int) ([]byte, bool) {
	if r.Remaining() < n {
		return nil, false
	}
	return r.data[r.pos : r.pos+n], true
}

func (r *SliceReader) Consume(n int) { r.pos += n }

// Borrow returns the next n bytes aliasing the underlying buffer.
func (r *SliceReader) Borrow(n int) ([]byte, error) {
	if rem := r.Remaining(); rem < n {
		r.pos = len(r.data)
		return nil, &IOError{Op: "read", Needed: n - rem, Err: io.ErrUnexpectedEOF}
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// IOReader adapts an io.Reader into a Reader, buffering so small reads do not
// hit the medium one byte at a time.
type IOReader struct {
	br *bufio.Reader
}

func NewIOReader(r io.Reader) *IOReader {
	return &IOReader{br: bufio.NewReader(r)}
}

func (r *IOReader) Read(p []byte) error {
	n, err := io.ReadFull(r.br, p)
	if err != nil {
		return &IOError{Op: "read", Needed: len(p) - n, Err: err}
	}
	return nil
}

func (r *IOReader) Peek(n int) ([]byte, bool) {
	b, err := r.br.Peek(n)
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *IOReader) Consume(n int) {
	// Discard only fails when n exceeds what Peek reported available.
	_, _ = r.br.Discard(n)
}
