package binpack

import "io"

// Writer is the byte sink a session encodes into. Write commits all of p or
// fails; partial writes are never silently accepted.
type Writer interface {
	Write(p []byte) error
	// BytesWritten reports how many bytes have been committed so far.
	BytesWritten() int
}

// SliceWriter collects output in a growable in-memory buffer. The zero value
// is ready to use.
type SliceWriter struct {
	buf []byte
}

// NewSliceWriter returns a SliceWriter writing into buf[:0], reusing its
// capacity.
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf[:0]}
}

func (w *SliceWriter) Write(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

func (w *SliceWriter) BytesWritten() int { return len(w.buf) }

// Bytes returns the collected output. The slice is invalidated by the next
// Write.
func (w *SliceWriter) Bytes() []byte { return w.buf }

// IOWriter adapts an io.Writer into a Writer. A short or failed write is
// reported as an IOError carrying the offset already committed.
type IOWriter struct {
	w io.Writer
	n int
}

func NewIOWriter(w io.Writer) *IOWriter {
	return &IOWriter{w: w}
}

func (w *IOWriter) Write(p []byte) error {
	n, err := w.w.Write(p)
	w.n += n
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOError{Op: "write", Offset: w.n, Err: err}
	}
	return nil
}

func (w *IOWriter) BytesWritten() int { return w.n }
