package metadata

import (
	"github.com/tailmark/tailmark/encoding"
	"github.com/tailmark/tailmark/errs"
	"github.com/tailmark/tailmark/format"
)

// RecordV2 covers the 2.x encodings.
//
// 2.0 inserted a fixed-size runtime-requirements word before the identity
// field; 2.1 appended a payload-digest word after all 2.0 fields. Field order
// within the major version is append-only, so one struct decodes both minors
// and the tag decides which trailing fields exist on the wire.
type RecordV2 struct {
	tag          format.Tag
	requirements uint64
	identity     string
	digest       uint64
}

// NewRecordV2 builds a 2.x record with the given tag, which must be one of
// the registered 2.x tags.
func NewRecordV2(tag format.Tag, identity string, requirements, digest uint64) *RecordV2 {
	return &RecordV2{
		tag:          tag,
		requirements: requirements,
		identity:     identity,
		digest:       digest,
	}
}

func (r *RecordV2) Tag() format.Tag {
	return r.tag
}

func (r *RecordV2) BuildIdentity() string {
	return r.identity
}

// Requirements returns the reserved runtime-requirements word. Current
// tooling writes zero; the field exists so a later minor can assign meaning
// to it without reshaping the record.
func (r *RecordV2) Requirements() uint64 {
	return r.requirements
}

// PayloadDigest reports the stored payload digest. Only 2.1 and later carry
// the field; a 2.0 record reports absent.
func (r *RecordV2) PayloadDigest() (uint64, bool) {
	if r.tag.Less(format.V2_1) {
		return 0, false
	}

	return r.digest, true
}

func (r *RecordV2) AppendTo(dst []byte) ([]byte, error) {
	dst = appendTag(dst, r.tag)
	dst = wire.AppendUint64(dst, r.requirements)

	dst, err := encoding.AppendStringField(dst, wire, r.identity)
	if err != nil {
		return nil, err
	}

	if !r.tag.Less(format.V2_1) {
		dst = wire.AppendUint64(dst, r.digest)
	}

	return dst, nil
}

func (r *RecordV2) CompatibleWith(identity string) bool {
	return r.identity == identity
}

// decodeV2 decodes a 2.x record body. The tag selects how many of the
// append-only trailing fields are present.
func decodeV2(tag format.Tag, body []byte) (Record, error) {
	if len(body) < 8 {
		return nil, errs.ErrTruncatedRecord
	}
	requirements := wire.Uint64(body[:8])
	body = body[8:]

	identity, n, err := encoding.DecodeStringField(body, wire)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	var digest uint64
	if !tag.Less(format.V2_1) {
		if len(body) < 8 {
			return nil, errs.ErrTruncatedRecord
		}
		digest = wire.Uint64(body[:8])
	}

	return &RecordV2{
		tag:          tag,
		requirements: requirements,
		identity:     identity,
		digest:       digest,
	}, nil
}

func decodeV2_0(body []byte) (Record, error) {
	return decodeV2(format.V2_0, body)
}

func decodeV2_1(body []byte) (Record, error) {
	return decodeV2(format.V2_1, body)
}

var _ Record = (*RecordV2)(nil)
