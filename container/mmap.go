package container

import (
	"fmt"
	"os"
)

// MmapContainer owns a blob mapped read-only from a file. On platforms
// without a usable mmap the file is read into heap memory instead; the
// container behaves identically either way.
type MmapContainer struct {
	data     []byte
	mapped   bool
	released bool
}

// OpenMmap maps the file at path read-only and wraps it in a container.
// An empty file yields a container with zero size and no mapping.
func OpenMmap(path string) (*MmapContainer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat blob file: %w", err)
	}

	size := info.Size()
	if size == 0 {
		return &MmapContainer{}, nil
	}

	data, mapped, err := mmapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("map blob file: %w", err)
	}

	return &MmapContainer{data: data, mapped: mapped}, nil
}

func (c *MmapContainer) Bytes() []byte {
	return c.data
}

func (c *MmapContainer) Size() int {
	return len(c.data)
}

// Release unmaps (or drops) the blob memory. Idempotent.
func (c *MmapContainer) Release() error {
	c.released = true
	if c.data == nil {
		return nil
	}

	data := c.data
	c.data = nil

	if !c.mapped {
		return nil
	}
	c.mapped = false

	if err := munmapFile(data); err != nil {
		return fmt.Errorf("unmap blob file: %w", err)
	}

	return nil
}

// Released reports whether Release has been called.
func (c *MmapContainer) Released() bool {
	return c.released
}

var _ Container = (*MmapContainer)(nil)
