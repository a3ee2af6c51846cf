package errno

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_Verbs(t *testing.T) {
	code := Errno(1)
	desc := code.String()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"v", "%v", desc},
		{"s", "%s", desc},
		{"q", "%q", strconv.Quote(desc)},
		{"d", "%d", "1"},
		{"padded d", "%04d", "0001"},
		{"hex", "%x", "1"},
		{"plus v", "%+v", code.debugString()},
		{"sharp v", "%#v", code.debugString()},
		{"left padded v", "%-40v|", fmt.Sprintf("%-40s|", desc)},
		{"right padded s", "%40s|", fmt.Sprintf("%40s|", desc)},
		{"precision s", "%.3s", desc[:3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, fmt.Sprintf(tt.format, code))
		})
	}
}

func TestFormat_DebugContainsCode(t *testing.T) {
	codes := []Errno{0, 1, 2, 22, 99999, -1}
	for _, code := range codes {
		out := fmt.Sprintf("%+v", code)
		require.Contains(t, out, "Errno{Code: "+strconv.Itoa(int(code)))

		_, err := code.Describe()
		if err != nil {
			require.NotContains(t, out, "Description")
		} else {
			require.Contains(t, out, "Description: ")
		}
	}
}

func TestFormat_InsideError(t *testing.T) {
	err := fmt.Errorf("open config: %w", Errno(2))
	require.Equal(t, "open config: "+Errno(2).String(), err.Error())
}
