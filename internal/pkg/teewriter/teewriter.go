package teewriter

import "io"

// Writer duplicates every write to the primary sink and an optional owned
// sink. Unlike io.MultiWriter it never short-circuits: a failing transcript
// file must not silence the console. The owned sink is the only one closed
// by Close.
type Writer struct {
	primary io.Writer
	owned   io.WriteCloser
}

func New(primary io.Writer, owned io.WriteCloser) *Writer {
	return &Writer{primary: primary, owned: owned}
}

// Write reports the primary sink's byte count. The owned sink is written
// regardless of the primary's outcome; its error surfaces only when the
// primary write succeeded.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.primary.Write(p)
	if w.owned != nil {
		if _, werr := w.owned.Write(p); werr != nil && err == nil {
			err = werr
		}
	}
	return n, err
}

// Close releases the owned sink, restoring plain single-destination output.
func (w *Writer) Close() error {
	if w.owned == nil {
		return nil
	}
	return w.owned.Close()
}
