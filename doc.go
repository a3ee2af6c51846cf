// Package errno provides typed access to the operating system's thread-local
// error code and renders codes into human-readable descriptions.
//
// On POSIX systems the code is errno and descriptions come from strerror_r.
// On Windows the code is the thread's last-error value and descriptions come
// from the system message tables through FormatMessageW. The backend is chosen
// at build time; callers only see Errno.
//
// # Quick Start
//
// Reading and writing the register:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//
//	errno.Set(errno.Errno(1))
//	code := errno.Get() // 1
//
// Rendering:
//
//	fmt.Println(errno.Errno(1))         // Operation not permitted
//	fmt.Printf("%+v\n", errno.Errno(1)) // Errno{Code: 1, Description: "Operation not permitted"}
//
// When the platform has no message for a code, the fallback names the code and
// the error the rendering facility reported:
//
//	fmt.Println(errno.Errno(99999)) // OS error 99999 (strerror_r returned error 22)
//
// Use Describe to tell the two cases apart:
//
//	desc, err := code.Describe()
//	var renderErr *errno.RenderError
//	if errors.As(err, &renderErr) {
//	    // renderErr.Err is the facility's own error code
//	}
//
// # Threads
//
// The register is per OS thread and goroutines move between threads. Between
// a failing call and Get, the goroutine must stay on the same thread and make
// no other fallible OS call, or a different code is observed. Set followed by
// Get on a locked thread always returns the value that was set.
//
// # Standard Library Compatibility
//
// Errno implements error and unwraps to syscall.Errno, so errors.Is works with
// the fs sentinels:
//
//	errors.Is(errno.Errno(1), fs.ErrPermission) // true on POSIX
//
// FromError extracts a code from any error chain that carries an Errno or a
// syscall.Errno.
//
// # Buffers
//
// Both backends render into fixed-size buffers (1 KiB for strerror_r, 2048
// UTF-16 units for FormatMessageW). A message that does not fit is a rendering
// failure, never a reallocation. Descriptions are not cached.
//
// The package requires cgo.
package errno
