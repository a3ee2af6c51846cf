package errno_test

import (
	"encoding/json"
	"fmt"
	"runtime"
	"testing"

	"github.com/jmgilman/go/errno"
)

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errno.Get()
	}
}

func BenchmarkSetGet(b *testing.B) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		errno.Set(errno.Errno(1))
		_ = errno.Get()
	}
}

// BenchmarkDescribe measures a single lookup; descriptions are not cached.
func BenchmarkDescribe(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = errno.Errno(2).Describe()
	}
}

func BenchmarkDescribe_Unknown(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = errno.Errno(99999).Describe()
	}
}

func BenchmarkFormatDebug(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%+v", errno.Errno(2))
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(errno.Errno(2))
	}
}
