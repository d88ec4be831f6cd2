package metadata

import (
	"github.com/tailmark/tailmark/encoding"
	"github.com/tailmark/tailmark/format"
)

// RecordV1 is the original 1.0 record: a format tag followed by the
// build-identity string field and nothing else.
type RecordV1 struct {
	identity string
}

// NewRecordV1 builds a 1.0 record. Current tooling writes format.Current
// records; this constructor exists for producing backward-format blobs and
// for tests.
func NewRecordV1(identity string) *RecordV1 {
	return &RecordV1{identity: identity}
}

func (r *RecordV1) Tag() format.Tag {
	return format.V1_0
}

func (r *RecordV1) BuildIdentity() string {
	return r.identity
}

// PayloadDigest always reports absent: the 1.0 encoding predates the digest
// field.
func (r *RecordV1) PayloadDigest() (uint64, bool) {
	return 0, false
}

func (r *RecordV1) AppendTo(dst []byte) ([]byte, error) {
	dst = appendTag(dst, format.V1_0)

	return encoding.AppendStringField(dst, wire, r.identity)
}

func (r *RecordV1) CompatibleWith(identity string) bool {
	return r.identity == identity
}

// decodeV1 decodes the 1.0 record body (the bytes after the format tag).
func decodeV1(body []byte) (Record, error) {
	identity, _, err := encoding.DecodeStringField(body, wire)
	if err != nil {
		return nil, err
	}

	return &RecordV1{identity: identity}, nil
}

var _ Record = (*RecordV1)(nil)
