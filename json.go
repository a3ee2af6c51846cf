package errno

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse is the JSON and YAML structure of an Errno.
//
// Description is nil when the code could not be rendered, so consumers can
// tell a failed lookup apart from an empty message.
type ErrorResponse struct {
	// Code is the raw integer code.
	Code int32 `json:"code" yaml:"code"`

	// Description is the rendered message. Omitted if rendering failed.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ToJSON converts a code into an ErrorResponse suitable for JSON serialization.
func ToJSON(e Errno) *ErrorResponse {
	resp := &ErrorResponse{Code: int32(e)}
	if desc, err := e.Describe(); err == nil {
		resp.Description = &desc
	}
	return resp
}

// MarshalJSON implements json.Marshaler.
//
// Example:
//
//	data, _ := json.Marshal(errno.Errno(1))
//	// Output (POSIX): {"code":1,"description":"Operation not permitted"}
func (e Errno) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, fmt.Errorf("marshal errno %d: %w", int32(e), err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts either the object
// produced by MarshalJSON or a bare integer. Any description is ignored, since
// it is derived from the code on the current platform.
func (e *Errno) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		var code int32
		if err := json.Unmarshal(data, &code); err != nil {
			return fmt.Errorf("unmarshal errno: %w", err)
		}
		*e = Errno(code)
		return nil
	}

	var resp ErrorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("unmarshal errno: %w", err)
	}
	*e = Errno(resp.Code)
	return nil
}
