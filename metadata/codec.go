package metadata

import (
	"fmt"

	"github.com/tailmark/tailmark/errs"
	"github.com/tailmark/tailmark/footer"
	"github.com/tailmark/tailmark/format"
)

// decoderFunc decodes a record body: the record bytes after the format tag.
type decoderFunc func(body []byte) (Record, error)

// decoders is the closed set of supported encodings. Registration is static;
// there is no plugin mechanism, so every tag either maps to a decoder here or
// decoding reports ErrUnknownVersion.
var decoders = map[format.Tag]decoderFunc{}

func register(tag format.Tag, fn decoderFunc) {
	if _, ok := decoders[tag]; ok {
		panic(fmt.Errorf("%w: %s", errs.ErrDuplicateTag, tag))
	}
	decoders[tag] = fn
}

func init() {
	register(format.V1_0, decodeV1)
	register(format.V2_0, decodeV2_0)
	register(format.V2_1, decodeV2_1)
}

// SupportedTags returns the tags this build can decode. The result is a fresh
// slice in unspecified order.
func SupportedTags() []format.Tag {
	tags := make([]format.Tag, 0, len(decoders))
	for tag := range decoders {
		tags = append(tags, tag)
	}

	return tags
}

// Decode decodes a metadata record from its serialized bytes.
//
// The format tag is read first; if it has no registered decoder, Decode stops
// immediately and reports ErrUnknownVersion without interpreting any further
// bytes (reading an unknown layout as a known one is never attempted). Bytes
// remaining after a fully decoded record are ignored.
//
// Returns ErrTruncatedRecord or ErrTruncatedField when data ends before all
// fields of the tagged encoding could be read.
func Decode(data []byte) (Record, error) {
	tag, err := readTag(data)
	if err != nil {
		return nil, err
	}

	fn, ok := decoders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, tag)
	}

	return fn(data[footer.TagSize:])
}
