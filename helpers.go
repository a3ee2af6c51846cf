package errno

import (
	"errors"
	"syscall"
)

// FromError extracts a code from an error chain.
// Returns false if err is nil or carries no operating system error code.
//
// The first Errno in the chain wins; otherwise the first syscall.Errno (as
// returned by os, net and syscall on every platform) is converted.
//
// A *RenderError unwraps to the rendering mechanism's own code, so FromError
// returns RenderError.Err for it, not the code that was being described. Use
// errors.As with *RenderError to get RenderError.Code.
//
// Example:
//
//	if _, err := os.Open(path); err != nil {
//	    if code, ok := errno.FromError(err); ok {
//	        log.Printf("open failed: %s (%d)", code, code)
//	    }
//	}
func FromError(err error) (Errno, bool) {
	if err == nil {
		return 0, false
	}

	var e Errno
	if errors.As(err, &e) {
		return e, true
	}

	var se syscall.Errno
	if errors.As(err, &se) {
		return Errno(int32(uint32(se))), true
	}

	return 0, false
}
