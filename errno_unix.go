//go:build unix && cgo

package errno

/*
#include <errno.h>
#include <string.h>

static int errno_get(void) { return errno; }
static void errno_set(int e) { errno = e; }

#if defined(__GLIBC__)
extern int __xpg_strerror_r(int, char *, size_t);
#define errno_xsi_strerror_r __xpg_strerror_r
#else
#define errno_xsi_strerror_r strerror_r
#endif

// Returns 0 on success, otherwise the error strerror_r reported. Older glibc
// returns -1 and sets errno; newer releases return the error directly.
static int errno_strerror(int code, char *buf, size_t len) {
	int rc = errno_xsi_strerror_r(code, buf, len);
	if (rc == -1) {
		return errno;
	}
	return rc;
}
*/
import "C"

import "unsafe"

// Mechanism names the facility used to render descriptions.
const Mechanism = "strerror_r"

// strerrorBufferSize is the fixed capacity for a rendered message. A message
// that does not fit is reported as a RenderError (ERANGE) rather than retried
// with a larger buffer.
const strerrorBufferSize = 1024

func get() Errno {
	return Errno(C.errno_get())
}

func set(e Errno) {
	C.errno_set(C.int(e))
}

func describe(e Errno) (string, error) {
	var buf [strerrorBufferSize]byte
	rc := C.errno_strerror(C.int(e), (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if rc != 0 {
		return "", &RenderError{Code: e, Mechanism: Mechanism, Err: Errno(rc)}
	}
	return decodeCString(buf[:]), nil
}
