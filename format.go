package errno

import (
	"fmt"
	"io"
	"strconv"
)

// Format implements fmt.Formatter.
//
//	%s, %v   description (see String); width, precision and - apply
//	%q       quoted description
//	%+v, %#v structured form: Errno{Code: 1, Description: "Operation not permitted"}
//	         Description is omitted when rendering failed: Errno{Code: 99999}
//	%d, %x…  the raw integer
func (e Errno) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = io.WriteString(s, e.debugString())
			return
		}
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.String())
	case 's', 'q':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.String())
	default:
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), int32(e))
	}
}

func (e Errno) debugString() string {
	desc, err := e.Describe()
	if err != nil {
		return "Errno{Code: " + strconv.FormatInt(int64(e), 10) + "}"
	}
	return "Errno{Code: " + strconv.FormatInt(int64(e), 10) + ", Description: " + strconv.Quote(desc) + "}"
}
