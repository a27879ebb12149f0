package deb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moby/sys/atomicwriter"
	"github.com/sirupsen/logrus"
)

// OutputPath returns the path the data member of the package at path is
// extracted to: path with OutputSuffix appended.
func OutputPath(path string) string {
	return path + OutputSuffix
}

// Demux scans the ar archive read from r and writes the payload of each member
// whose name starts with DataMemberPrefix to out, replacing any existing file.
// When several members match, the last one wins.
//
// It reports whether a matching member was found. out is left untouched when
// none was.
func Demux(r io.Reader, out string) (bool, error) {
	rd, err := NewReader(r)
	if err != nil {
		return false, err
	}

	found := false
	for {
		hdr, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return found, err
		}

		log := logrus.WithFields(logrus.Fields{"member": hdr.Name, "size": hdr.Size})
		if !strings.HasPrefix(hdr.Name, DataMemberPrefix) {
			log.Debug("skipping member")
			continue
		}

		payload, err := io.ReadAll(rd)
		if err != nil {
			return found, fmt.Errorf("reading %s: %w", hdr.Name, err)
		}
		if err := atomicwriter.WriteFile(out, payload, 0o644); err != nil {
			return found, fmt.Errorf("writing %s: %w", out, err)
		}
		log.WithField("output", out).Debug("extracted data member")
		found = true
	}
	return found, nil
}

// Extract writes the data archive embedded in the Debian package at path to
// OutputPath(path) and returns that path.
//
// A package without a data.tar* member is not an error: the output path is
// returned but no file is written.
func Extract(path string) (string, error) {
	out := OutputPath(path)

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	found, err := Demux(f, out)
	if errors.Is(err, ErrNotArArchive) {
		return "", fmt.Errorf("%s is %w", path, err)
	}
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", path, err)
	}
	if !found {
		logrus.WithField("package", path).Warnf("no %s* member found, %s was not written", DataMemberPrefix, out)
	}
	return out, nil
}
