//go:build unix

package container

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func mmapFile(f *os.File, size int) ([]byte, bool, error) {
	b, err := unix.Mmap(int(f.Fd()), 0, size, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, false, err
	}

	// Footer reads are a short backward scan of the tail; read-ahead of the
	// whole payload is wasted work until the loader actually consumes it.
	if err := unix.Madvise(b, syscall.MADV_RANDOM); err != nil && err != syscall.ENOSYS {
		_ = unix.Munmap(b)
		return nil, false, err
	}

	return b, true, nil
}

func munmapFile(b []byte) error {
	return unix.Munmap(b)
}
