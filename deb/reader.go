package deb

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ErrNotArArchive is returned when a stream does not start with Magic.
var ErrNotArArchive = errors.New("not an ar archive")

// Reader provides sequential access to the members of an ar archive.
//
// Next advances to the next member, skipping whatever is left of the current
// payload and its alignment byte. Read reads the payload of the current member.
//
//	rd, err := deb.NewReader(f)
//	...
//	for {
//		hdr, err := rd.Next()
//		if err == io.EOF {
//			break
//		}
//		...
//		io.Copy(w, rd)
//	}
type Reader struct {
	r   io.Reader
	nb  int64 // unread payload bytes of the current member
	pad int64 // alignment bytes following the current payload
}

// NewReader checks the global header of r and returns a Reader positioned on
// the first member header.
func NewReader(r io.Reader) (*Reader, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrNotArArchive
		}
		return nil, fmt.Errorf("reading ar global header: %w", err)
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return nil, ErrNotArArchive
	}
	return &Reader{r: r}, nil
}

// Next skips to the next member and returns its header. It returns io.EOF at
// the end of the archive. A truncated header also ends the archive.
func (rd *Reader) Next() (*MemberHeader, error) {
	if err := rd.skipUnread(); err != nil {
		return nil, err
	}

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(rd.r, buf)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		logrus.WithField("bytes", n).Debug("truncated member header, treating as end of archive")
		return nil, io.EOF
	case err != nil:
		return nil, fmt.Errorf("reading ar header: %w", err)
	}

	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	rd.nb = hdr.Size
	rd.pad = hdr.Size % 2
	return hdr, nil
}

// Read reads from the payload of the current member. It returns io.EOF once
// the payload is consumed, and io.ErrUnexpectedEOF if the archive ends first.
func (rd *Reader) Read(b []byte) (int, error) {
	if rd.nb == 0 {
		return 0, io.EOF
	}
	if int64(len(b)) > rd.nb {
		b = b[:rd.nb]
	}
	n, err := rd.r.Read(b)
	rd.nb -= int64(n)
	if err == io.EOF && rd.nb > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// skipUnread discards the rest of the current payload and its pad byte.
// A missing pad byte at the very end of the archive is tolerated.
func (rd *Reader) skipUnread() error {
	if rd.nb > 0 {
		n, err := io.CopyN(io.Discard, rd.r, rd.nb)
		rd.nb -= n
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
	}
	if rd.pad > 0 {
		rd.pad = 0
		if _, err := io.CopyN(io.Discard, rd.r, 1); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}
