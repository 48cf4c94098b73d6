//go:build !windows

package dcc

// registryLookup is a Windows-only install-dir source; other platforms
// always miss.
func registryLookup(App, string) (string, bool) {
	return "", false
}
