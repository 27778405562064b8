//go:build linux
// +build linux

package benchmark

import (
	"os"

	"golang.org/x/sys/unix"
)

const pageCacheDropSupported = true

// dropPageCache asks the kernel to evict the file's cached pages so the read
// phase hits the device. The file must already be synced.
func dropPageCache(f *os.File) error {
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_DONTNEED)
}
