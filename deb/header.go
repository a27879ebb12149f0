package deb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MemberHeader holds the decoded fields of an ar member header.
type MemberHeader struct {
	Name string
	Size int64
}

// HeaderError reports a member header field that could not be decoded.
type HeaderError struct {
	Field string
	Value string
	Err   error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("decoding member %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

var (
	errNotASCII     = errors.New("not ascii")
	errNegativeSize = errors.New("negative size")
)

// parseHeader decodes the name and size fields of a 60 byte member header.
func parseHeader(buf []byte) (*MemberHeader, error) {
	if len(buf) != HeaderSize {
		return nil, fmt.Errorf("member header is %d bytes, want %d", len(buf), HeaderSize)
	}

	rawName := buf[nameOffset : nameOffset+nameLen]
	if !isASCII(rawName) {
		return nil, &HeaderError{Field: "name", Value: string(rawName), Err: errNotASCII}
	}
	name := strings.TrimSpace(string(rawName))

	rawSize := buf[sizeOffset : sizeOffset+sizeLen]
	sizeStr := strings.TrimSpace(string(rawSize))
	size, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil {
		return nil, &HeaderError{Field: "size", Value: sizeStr, Err: err}
	}
	if size < 0 {
		return nil, &HeaderError{Field: "size", Value: sizeStr, Err: errNegativeSize}
	}

	return &MemberHeader{Name: name, Size: size}, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
