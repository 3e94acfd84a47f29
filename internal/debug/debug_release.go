//go:build release
// +build release

package debug

const diagnosticsEnabled = false

func DiagnosticsEnabled() bool {
	// Silent in release builds
	return false
}
