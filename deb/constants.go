package deb

// Magic is the global header every ar archive starts with.
const Magic = "!<arch>\n"

// Member header geometry. Only the name and size fields are decoded; the
// date, owner, group and mode fields in between are skipped.
const (
	HeaderSize = 60

	nameOffset = 0
	nameLen    = 16
	sizeOffset = 48
	sizeLen    = 10
)

// PackageFile represents a standard member found in the .deb archive (ar format).
type PackageFile string

const (
	PkgDebianBinary PackageFile = "debian-binary"
	PkgControlTarGz PackageFile = "control.tar.gz"
	PkgDataTarGz    PackageFile = "data.tar.gz"
	PkgDataTarXz    PackageFile = "data.tar.xz"
)

// DataMemberPrefix selects the payload member, whatever its compression.
const DataMemberPrefix = "data.tar"

// OutputSuffix is appended to the input path to name the extracted payload.
// It is used as is, even when the matched member is not xz compressed.
const OutputSuffix = ".data.tar.xz"
