//go:build unix

package errno

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Name returns the symbolic name of the code, such as "EPERM", or an empty
// string if the platform defines none.
func (e Errno) Name() string {
	return unix.ErrnoName(syscall.Errno(uint32(e)))
}
