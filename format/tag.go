package format

import "fmt"

// Tag identifies a footer record encoding as a (major, minor) version pair.
//
// Tags are ordered lexicographically by (Major, Minor). The on-wire encoding
// of a Tag (two little-endian uint32 values, major first) is fixed and never
// evolves, since it must be decodable before any version-specific logic runs.
type Tag struct {
	Major uint32
	Minor uint32
}

// Known record encodings.
var (
	V1_0 = Tag{Major: 1, Minor: 0}
	V2_0 = Tag{Major: 2, Minor: 0}
	V2_1 = Tag{Major: 2, Minor: 1}

	// Current is the encoding written by this build. Readers still accept
	// every earlier registered tag.
	Current = V2_1
)

// Equal reports whether two tags identify the same encoding.
func (t Tag) Equal(other Tag) bool {
	return t.Major == other.Major && t.Minor == other.Minor
}

// Less reports whether t orders before other by (major, minor).
func (t Tag) Less(other Tag) bool {
	if t.Major != other.Major {
		return t.Major < other.Major
	}

	return t.Minor < other.Minor
}

func (t Tag) String() string {
	return fmt.Sprintf("%d.%d", t.Major, t.Minor)
}
