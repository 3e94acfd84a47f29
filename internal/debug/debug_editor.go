//go:build !release
// +build !release

package debug

// Diagnostics are compiled in for development builds. Build with -tags release
// to strip them.
const diagnosticsEnabled = true

func DiagnosticsEnabled() bool {
	return diagnosticsEnabled
}
