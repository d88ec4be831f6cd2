// Package footer implements the tail framing of a versioned blob: locating a
// footer by scanning backward from the end of an opaque buffer, and appending
// the framing bytes when a blob is produced.
//
// Blob layout, back to front:
//
//	[ payload bytes ...              ]
//	[ metadata record bytes          ]
//	[ payload length : uint64        ]
//	[ magic marker   : 12 bytes      ]
//
// The payload-length word holds the absolute byte offset at which the payload
// ends and the metadata record begins. Locating a footer requires no
// version-specific knowledge: the version tag lives inside the record bytes
// and is interpreted by the metadata package afterwards.
package footer

import (
	"github.com/tailmark/tailmark/endian"
	"github.com/tailmark/tailmark/errs"
)

// wire is the byte order of the footer framing fields.
var wire = endian.Little()

// Range describes where a located footer splits a buffer.
type Range struct {
	// PayloadLen is the byte offset where the payload ends and the metadata
	// record begins.
	PayloadLen uint64
	// RecordStart and RecordEnd bound the metadata record bytes,
	// RecordStart inclusive and RecordEnd exclusive.
	RecordStart int
	RecordEnd   int
}

// Record returns the metadata record bytes of buf. The buffer must be the one
// Locate was called with.
func (r Range) Record(buf []byte) []byte {
	return buf[r.RecordStart:r.RecordEnd]
}

// Payload returns the payload bytes of buf, excluding all footer bytes.
func (r Range) Payload(buf []byte) []byte {
	return buf[:r.RecordStart]
}

// Locate scans backward from the end of buf for a footer.
//
// Returns:
//   - errs.ErrNoFooter if buf is too small to hold a footer or its trailing
//     bytes do not match the magic marker. This is the expected outcome for
//     legacy, unversioned blobs, not a failure.
//   - errs.ErrCorruptFooter if the payload-length word points past the space
//     available before the framing fields.
//
// Every offset is validated against len(buf) before it is dereferenced;
// Locate never reads out of bounds, even on adversarial input.
func Locate(buf []byte) (Range, error) {
	if len(buf) < FrameSize {
		return Range{}, errs.ErrNoFooter
	}
	if string(buf[len(buf)-MagicSize:]) != Magic {
		return Range{}, errs.ErrNoFooter
	}

	recordEnd := len(buf) - FrameSize
	payloadLen := wire.Uint64(buf[recordEnd : recordEnd+LengthSize])
	if payloadLen > uint64(recordEnd) {
		return Range{}, errs.ErrCorruptFooter
	}

	return Range{
		PayloadLen:  payloadLen,
		RecordStart: int(payloadLen),
		RecordEnd:   recordEnd,
	}, nil
}

// Append appends a complete footer to dst: the serialized metadata record,
// the payload-length word, and the magic marker. It returns the extended
// slice. The caller concatenates the result after the payload bytes;
// payloadLen must equal the payload's byte length.
func Append(dst []byte, record []byte, payloadLen uint64) []byte {
	dst = append(dst, record...)

	return AppendFrame(dst, payloadLen)
}

// AppendFrame appends only the framing fields (payload-length word and magic
// marker) to dst, which must already end with the serialized metadata record.
func AppendFrame(dst []byte, payloadLen uint64) []byte {
	dst = wire.AppendUint64(dst, payloadLen)

	return append(dst, Magic...)
}
