//go:build windows

package errno

// Name returns an empty string; Windows exposes no symbolic names for
// system error codes at run time.
func (e Errno) Name() string {
	return ""
}
