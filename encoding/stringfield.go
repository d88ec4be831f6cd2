// Package encoding implements the primitive field codecs of the tailmark
// footer format.
package encoding

import (
	"github.com/tailmark/tailmark/endian"
	"github.com/tailmark/tailmark/errs"
)

// MaxStringFieldLen is the maximum byte length of a string field.
//
// The length prefix is a uint32 and could address 4 GiB, but a build-identity
// string anywhere near that size is corruption, not data. Capping the length
// keeps a damaged prefix from turning into a giant allocation.
const MaxStringFieldLen = 64 * 1024

// StringFieldSize returns the encoded size of a string field: the 4-byte
// length prefix plus the string bytes.
func StringFieldSize(s string) int {
	return 4 + len(s)
}

// AppendStringField appends a length-prefixed string field to dst and returns
// the extended slice.
//
// Encoding format:
//   - 4 bytes: byte length as uint32
//   - N bytes: raw string data, no encoding conversion
//
// Returns ErrFieldTooLarge if the string exceeds MaxStringFieldLen.
func AppendStringField(dst []byte, engine endian.Engine, s string) ([]byte, error) {
	if len(s) > MaxStringFieldLen {
		return nil, errs.ErrFieldTooLarge
	}

	dst = engine.AppendUint32(dst, uint32(len(s))) //nolint:gosec

	return append(dst, s...), nil
}

// DecodeStringField decodes a length-prefixed string field from the start of
// data.
//
// Returns the decoded string and the total number of bytes consumed (prefix
// plus data). The declared length is validated against the remaining buffer
// before any data byte is read; a prefix that points past the end of data
// yields ErrTruncatedField, never an out-of-bounds read.
func DecodeStringField(data []byte, engine endian.Engine) (string, int, error) {
	if len(data) < 4 {
		return "", 0, errs.ErrTruncatedField
	}

	length := engine.Uint32(data[:4])
	if length > MaxStringFieldLen {
		return "", 0, errs.ErrFieldTooLarge
	}
	if uint64(length) > uint64(len(data)-4) {
		return "", 0, errs.ErrTruncatedField
	}

	return string(data[4 : 4+length]), 4 + int(length), nil
}
