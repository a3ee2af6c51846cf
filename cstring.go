package errno

import (
	"bytes"
	"strings"
	"unicode"
)

// decodeCString converts a NUL-terminated message in the platform's native
// encoding into a description.
//
// Without a NUL the whole buffer is used. Each byte that is not valid UTF-8
// becomes U+FFFD, and the trailing whitespace some libcs append is trimmed.
func decodeCString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	// Converting through []rune maps each invalid byte to its own U+FFFD.
	msg := string([]rune(string(buf)))
	return strings.TrimRightFunc(msg, unicode.IsSpace)
}
