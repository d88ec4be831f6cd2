// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single Engine interface, so codecs can take
// one explicit byte-order parameter for both fixed-offset and append-style
// operations.
//
// The tailmark wire format is little-endian; Little() is what every codec in
// this module uses. Big() exists for tools that need to inspect foreign data.
//
// Engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so it stays
// fully compatible with code that expects the standard interfaces.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine used by the tailmark wire format.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}
