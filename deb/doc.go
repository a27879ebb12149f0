// Package deb extracts the data archive embedded in a Debian binary package.
//
// A .deb file is an ar archive: the global header "!<arch>\n" followed by
// members, each made of a 60 byte ASCII header, a payload and, when the
// payload size is odd, one alignment byte. The package holds three members:
// debian-binary, control.tar.* and data.tar.*. This package only cares about
// the last one.
//
// Extract scans a package once, from start to end, and copies the payload of
// the data.tar* member to a file next to the package:
//
//	out, err := deb.Extract("hello_1.0_amd64.deb")
//	// out == "hello_1.0_amd64.deb.data.tar.xz"
//
// The payload is copied byte for byte. It is never decompressed, and the
// output name always ends in .data.tar.xz whatever the member's compression.
//
// Reader gives member by member access to any ar stream, and WriteContainer
// builds one, which is mostly useful to produce fixtures.
package deb
