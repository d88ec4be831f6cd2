// Package container provides the buffer-ownership wrappers that loaders hand
// to the footer reader: a plain owned-bytes container and a memory-mapped
// file container.
//
// The core packages only ever see a []byte; a Container owns the backing
// memory and controls its lifetime. Containers are read-only: nothing in this
// module mutates blob bytes.
package container

// Container owns the backing memory of a fully materialized blob.
type Container interface {
	// Bytes returns the blob bytes, or nil after Release.
	Bytes() []byte

	// Size returns the blob length in bytes, or 0 after Release.
	Size() int

	// Release drops or unmaps the backing memory. Bytes obtained earlier
	// must not be used afterwards. Release is idempotent.
	Release() error

	// Released reports whether Release has been called.
	Released() bool
}

// BytesContainer owns a blob held in ordinary heap memory.
type BytesContainer struct {
	buf      []byte
	released bool
}

// NewBytes wraps an in-memory blob. The container takes ownership; the caller
// must not modify b afterwards.
func NewBytes(b []byte) *BytesContainer {
	return &BytesContainer{buf: b}
}

func (c *BytesContainer) Bytes() []byte {
	return c.buf
}

func (c *BytesContainer) Size() int {
	return len(c.buf)
}

// Release drops the reference so the memory can be collected.
func (c *BytesContainer) Release() error {
	c.buf = nil
	c.released = true

	return nil
}

// Released reports whether Release has been called.
func (c *BytesContainer) Released() bool {
	return c.released
}

var _ Container = (*BytesContainer)(nil)
