// Package metadata implements the versioned record stored inside a blob
// footer, one decoder per historical encoding, dispatched by format tag.
//
// Every record begins with its format tag: major and minor as little-endian
// uint32 values. The tag encoding itself never evolves. Variant fields follow
// in a fixed, append-only order; within a major version a later minor may only
// append fields after all previously defined ones, and its decoder reads the
// superset. Records are immutable once constructed and carry no reference to
// the buffer they were decoded from.
package metadata

import (
	"github.com/tailmark/tailmark/endian"
	"github.com/tailmark/tailmark/errs"
	"github.com/tailmark/tailmark/footer"
	"github.com/tailmark/tailmark/format"
)

// wire is the byte order of all record fields.
var wire = endian.Little()

// Record is a decoded (or freshly built) footer metadata record.
type Record interface {
	// Tag returns the format tag the record was encoded with.
	Tag() format.Tag

	// BuildIdentity returns the identity string of the build that produced
	// the blob.
	BuildIdentity() string

	// PayloadDigest returns the stored payload digest and whether the
	// record's encoding carries one at all. A stored digest of zero means
	// the producer did not record it.
	PayloadDigest() (uint64, bool)

	// AppendTo serializes the record, tag first, and returns the extended
	// slice.
	AppendTo(dst []byte) ([]byte, error)

	// CompatibleWith reports whether the record's build identity exactly
	// matches the running build's identity.
	CompatibleWith(identity string) bool
}

// NewRecord builds a record at the current format version for the given build
// identity. digest is the xxHash64 of the payload bytes, or zero to leave the
// payload digest unrecorded.
func NewRecord(identity string, digest uint64) Record {
	return &RecordV2{
		tag:      format.Current,
		identity: identity,
		digest:   digest,
	}
}

func appendTag(dst []byte, tag format.Tag) []byte {
	dst = wire.AppendUint32(dst, tag.Major)

	return wire.AppendUint32(dst, tag.Minor)
}

func readTag(data []byte) (format.Tag, error) {
	if len(data) < footer.TagSize {
		return format.Tag{}, errs.ErrTruncatedRecord
	}

	return format.Tag{
		Major: wire.Uint32(data[0:4]),
		Minor: wire.Uint32(data[4:8]),
	}, nil
}
