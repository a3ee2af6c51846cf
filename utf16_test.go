package errno

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestDecodeUTF16Lossy(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		size int
		want string
	}{
		{
			name: "ascii with crlf",
			src:  utf16.Encode([]rune("Incorrect function.\r\n")),
			size: 64,
			want: "Incorrect function.\r\n",
		},
		{
			name: "stops at nul",
			src:  utf16.Encode([]rune("ab\x00cd")),
			size: 64,
			want: "ab",
		},
		{
			name: "unpaired high surrogate",
			src:  []uint16{0xD800, 'a'},
			size: 64,
			want: "\uFFFDa",
		},
		{
			name: "unpaired low surrogate",
			src:  []uint16{'a', 0xDC00, 'b'},
			size: 64,
			want: "a\uFFFDb",
		},
		{
			name: "surrogate pair",
			src:  utf16.Encode([]rune("ok 😀")),
			size: 64,
			want: "ok 😀",
		},
		{
			name: "short dst stops before partial character",
			src:  utf16.Encode([]rune("é€")),
			size: 4,
			want: "é",
		},
		{
			name: "short dst with surrogate pair",
			src:  utf16.Encode([]rune("😀")),
			size: 3,
			want: "",
		},
		{
			name: "exact fit",
			src:  utf16.Encode([]rune("é€")),
			size: 5,
			want: "é€",
		},
		{
			name: "empty",
			src:  nil,
			size: 8,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.size)
			n := decodeUTF16Lossy(tt.src, dst)
			require.Equal(t, tt.want, string(dst[:n]))
		})
	}
}

func TestDecodeUTF16Lossy_CapsSource(t *testing.T) {
	src := make([]uint16, formatMessageBufferSize+10)
	for i := range src {
		src[i] = 'x'
	}

	dst := make([]byte, 2*formatMessageBufferSize)
	n := decodeUTF16Lossy(src, dst)
	require.Equal(t, formatMessageBufferSize, n)
}
