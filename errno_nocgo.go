//go:build !cgo

package errno

// The error register belongs to the C runtime on every supported platform and
// is only reachable through cgo. Build with CGO_ENABLED=1.
var _ = errnoRequiresCgo
