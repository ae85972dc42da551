//go:build linux

package zerofill

import (
	"os"

	"golang.org/x/sys/unix"
)

// allocate reserves disk blocks and sets the logical length in one shot.
// The ftruncate fallback covers filesystems without fallocate support
// (NFS and friends); it may leave the file sparse, which still reads as
// zeroes for every byte.
func allocate(f *os.File, size int64) error {
	if err := unix.Fallocate(int(f.Fd()), 0, 0, size); err != nil {
		return unix.Ftruncate(int(f.Fd()), size)
	}
	// Fallocate reserves blocks but does not move the logical size.
	return unix.Ftruncate(int(f.Fd()), size)
}
