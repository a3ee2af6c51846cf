package errno

import "fmt"

// RenderError reports that the rendering mechanism could not produce a
// description.
//
// Err carries the error the mechanism itself reported, not the code being
// described. This separates "code N has no description" from "the lookup
// facility failed while describing code N".
type RenderError struct {
	// Code is the code that was being described.
	Code Errno

	// Mechanism names the OS facility that was used (see Mechanism).
	Mechanism string

	// Err is the error code reported by the mechanism.
	Err Errno
}

// Error returns the fallback text used in place of a description.
// Format: "OS error {code} ({mechanism} returned error {err})".
func (r *RenderError) Error() string {
	return fmt.Sprintf("OS error %d (%s returned error %d)", int32(r.Code), r.Mechanism, int32(r.Err))
}

// Unwrap returns the mechanism's own error code.
func (r *RenderError) Unwrap() error {
	return r.Err
}
