package errno

import (
	"encoding/binary"
	"slices"

	"golang.org/x/text/encoding/unicode"
)

// formatMessageBufferSize is the fixed capacity, in UTF-16 units, of the
// buffer FormatMessageW writes into. The decoded UTF-8 buffer has the same
// capacity in bytes.
const formatMessageBufferSize = 2048

// decodeUTF16Lossy converts UTF-16 text into UTF-8 written to dst and returns
// the number of bytes written.
//
// Decoding stops at the first NUL unit and after formatMessageBufferSize
// units. Unpaired surrogates become U+FFFD. If dst is too small, decoding
// stops after the last character that fits whole.
func decodeUTF16Lossy(src []uint16, dst []byte) int {
	if i := slices.Index(src, 0); i >= 0 {
		src = src[:i]
	}
	if len(src) > formatMessageBufferSize {
		src = src[:formatMessageBufferSize]
	}

	var raw [2 * formatMessageBufferSize]byte
	for i, u := range src {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	// ErrShortDst leaves n at the end of the last complete character.
	n, _, _ := dec.Transform(dst, raw[:2*len(src)], true)
	return n
}
