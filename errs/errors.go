// Package errs defines the sentinel errors shared across tailmark packages.
//
// Every error here is a recoverable, reportable condition. Callers match them
// with errors.Is; none of them should ever terminate a process. In particular
// ErrNoFooter is an expected first-class outcome (a legacy, unversioned blob),
// not an anomaly.
package errs

import "errors"

var (
	// ErrNoFooter indicates the buffer carries no metadata footer at all:
	// either it is too small to hold one, or its trailing bytes do not match
	// the magic marker. The blob is treated as a legacy unversioned artifact.
	ErrNoFooter = errors.New("blob has no metadata footer")

	// ErrCorruptFooter indicates a footer whose payload-length field is
	// inconsistent with the buffer size.
	ErrCorruptFooter = errors.New("footer payload length exceeds buffer bounds")

	// ErrUnknownVersion indicates a footer whose format tag has no registered
	// decoder. The blob is still loadable, just without compatibility
	// information.
	ErrUnknownVersion = errors.New("unrecognized metadata format version")

	// ErrTruncatedField indicates a length-prefixed field that declares more
	// bytes than remain in the buffer.
	ErrTruncatedField = errors.New("string field truncated")

	// ErrTruncatedRecord indicates a metadata record that ends before all of
	// its fields could be read.
	ErrTruncatedRecord = errors.New("metadata record truncated")

	// ErrFieldTooLarge indicates a string field longer than the format allows.
	ErrFieldTooLarge = errors.New("string field exceeds maximum length")

	// ErrDuplicateTag indicates two record decoders registered under the same
	// format tag. This is a programmer error and surfaces as a panic during
	// package initialization.
	ErrDuplicateTag = errors.New("duplicate format tag registration")

	// ErrBufferReleased indicates a read through a container whose backing
	// memory has already been released.
	ErrBufferReleased = errors.New("container buffer already released")
)
