package errno

import (
	"cmp"
	"fmt"
	"syscall"
)

// Errno is a platform-specific error code as held by the calling thread's
// error register (errno on POSIX systems, the last-error value on Windows).
//
// Errno is a plain value. Two codes are equal when their raw integers are
// equal, and ordering follows the raw integer. The same numeric value can mean
// different things on different platforms; no attempt is made to reconcile
// them.
type Errno int32

// Get returns the calling thread's current error code.
//
// The register is thread-local, while goroutines are not bound to threads.
// Callers that need Get to observe a code left by an earlier call must run
// both on the same OS thread (see runtime.LockOSThread) with no other fallible
// OS call in between.
func Get() Errno {
	return get()
}

// Set stores e in the calling thread's error register.
// Set never fails.
func Set(e Errno) {
	set(e)
}

// FromInt converts a raw integer code into an Errno.
func FromInt(code int32) Errno {
	return Errno(code)
}

// Int returns the raw integer code.
func (e Errno) Int() int32 {
	return int32(e)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func Compare(a, b Errno) int {
	return cmp.Compare(a, b)
}

// Describe renders the code into the platform's human-readable description.
//
// A non-nil error is always a *RenderError and means the rendering mechanism
// itself failed, typically because the code has no registered message.
func (e Errno) Describe() (string, error) {
	return describe(e)
}

// String returns the description of the code, or a fallback naming the code
// and the rendering failure. The result is never empty.
func (e Errno) String() string {
	desc, err := e.Describe()
	if err != nil {
		return err.Error()
	}
	if desc == "" {
		return fmt.Sprintf("OS error %d", int32(e))
	}
	return desc
}

// Error implements the error interface. It is identical to String.
func (e Errno) Error() string {
	return e.String()
}

// OSError converts the code into the generic operating system error value
// understood by the standard library, so that checks such as
// errors.Is(err, fs.ErrPermission) work.
func (e Errno) OSError() error {
	return syscall.Errno(uint32(e))
}

// Unwrap returns the generic operating system error for errors.Is and
// errors.As compatibility.
func (e Errno) Unwrap() error {
	return e.OSError()
}
