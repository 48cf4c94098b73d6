package dcc

import (
	"path"
	"strings"
)

// lookPath scans the PATH entries of the injected environment for exe.
// exec.LookPath would bypass the injected filesystem, so the scan is done
// by hand against l.fs.
func (l *Locator) lookPath(exe string) (string, bool) {
	pathVar, set := l.env("PATH")
	if !set || pathVar == "" {
		return "", false
	}
	sep := ":"
	if l.platform == PlatformWindows {
		sep = ";"
	}
	for _, dir := range strings.Split(pathVar, sep) {
		if dir == "" {
			continue
		}
		p := path.Join(dir, exe)
		if l.isExecutable(p) {
			return p, true
		}
	}
	return "", false
}
