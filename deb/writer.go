package deb

import (
	"fmt"
	"io"
	"time"

	"github.com/blakesmith/ar"
)

// Member is a named payload to be stored in an ar archive.
type Member struct {
	Name string
	Body []byte

	// ModTime is the modification time stored in the member header.
	// If zero, the current time is used.
	ModTime time.Time
}

// countingWriter wraps an io.Writer and counts the bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

// Write writes p to the underlying io.Writer and increments the byte count.
func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteContainer writes an ar archive holding members, in order, to w.
// It returns the total number of bytes written, alignment bytes included.
func WriteContainer(w io.Writer, members ...Member) (int64, error) {
	cw := &countingWriter{w: w}
	arW := ar.NewWriter(cw)

	if err := arW.WriteGlobalHeader(); err != nil {
		return cw.n, fmt.Errorf("writing ar global header: %w", err)
	}
	for _, m := range members {
		if err := addMember(arW, m); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", m.Name, err)
		}
	}
	return cw.n, nil
}

// addMember writes m as a file entry with mode 0644. The payload goes out in a
// single Write so the ar writer emits the pad byte for odd sizes.
func addMember(w *ar.Writer, m Member) error {
	if len(m.Name) == 0 || len(m.Name) > nameLen {
		return fmt.Errorf("member name must be 1 to %d bytes, got %d", nameLen, len(m.Name))
	}
	if !isASCII([]byte(m.Name)) {
		return fmt.Errorf("member name %q is not ascii", m.Name)
	}

	header := &ar.Header{
		Name:    m.Name,
		Size:    int64(len(m.Body)),
		Mode:    0644,
		ModTime: m.ModTime,
	}
	if header.ModTime.IsZero() {
		header.ModTime = time.Now()
	}
	if err := w.WriteHeader(header); err != nil {
		return err
	}
	_, err := w.Write(m.Body)
	return err
}
