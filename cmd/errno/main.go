// Command errno looks up operating system error codes.
//
// Usage:
//
//	errno describe 1 2 13
//	errno list --max 40
//	errno search permission denied
//	errno describe 2 --output json
//
// Flags can also be set through the environment with the ERRNO_ prefix, for
// example ERRNO_OUTPUT=json or ERRNO_LOG_LEVEL=debug.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
