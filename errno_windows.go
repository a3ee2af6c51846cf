//go:build windows && cgo

package errno

/*
#include <windows.h>

static DWORD errno_get(void) { return GetLastError(); }
static void errno_set(DWORD e) { SetLastError(e); }
*/
import "C"

// The last-error value is read and written from C: Go's own system call path
// clears it before every call it makes, so it cannot be observed through
// golang.org/x/sys/windows.

func get() Errno {
	return Errno(int32(uint32(C.errno_get())))
}

func set(e Errno) {
	C.errno_set(C.DWORD(uint32(e)))
}
