//go:build !unix

package container

import (
	"io"
	"os"
)

// Fallback for platforms without the unix mmap interface: read the whole file
// into heap memory. The second return value reports whether the bytes are a
// real mapping that needs munmap.
func mmapFile(f *os.File, size int) ([]byte, bool, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, false, err
	}

	return b, false, nil
}

func munmapFile(_ []byte) error {
	return nil
}
