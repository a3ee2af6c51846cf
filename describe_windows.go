//go:build windows

package errno

import (
	"errors"
	"strings"
	"syscall"
	"unicode"

	"golang.org/x/sys/windows"
)

// Mechanism names the facility used to render descriptions.
const Mechanism = "FormatMessageW"

// MAKELANGID(LANG_SYSTEM_DEFAULT, SUBLANG_SYS_DEFAULT)
const langSystemDefault = 0x0800

func describe(e Errno) (string, error) {
	var buf [formatMessageBufferSize]uint16
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		uint32(e),
		langSystemDefault,
		buf[:],
		nil,
	)
	if n == 0 {
		// Unknown code, or the requested language is not installed.
		return "", &RenderError{Code: e, Mechanism: Mechanism, Err: lastError(err)}
	}

	var msg [formatMessageBufferSize]byte
	m := decodeUTF16Lossy(buf[:n], msg[:])

	// FormatMessageW terminates system messages with CRLF.
	return strings.TrimRightFunc(string(msg[:m]), unicode.IsSpace), nil
}

// lastError returns the last-error value captured by the system call.
func lastError(err error) Errno {
	var se syscall.Errno
	if errors.As(err, &se) {
		return Errno(int32(uint32(se)))
	}
	return Get()
}
