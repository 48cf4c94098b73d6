package dcc

import (
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// versionToken marks the spot in a directory template where the application
// version belongs. Templates keep the token inside the final path segment.
const versionToken = "{version}"

// EnvLookup resolves an environment variable, reporting whether it is set
type EnvLookup func(key string) (string, bool)

// expandEnvVars expands ${VAR} references in a template using the injected
// lookup. Returns ok=false when any referenced variable is unset, which
// disqualifies the candidate rather than producing a bogus path.
func expandEnvVars(tpl string, env EnvLookup) (string, bool) {
	ok := true
	expanded := os.Expand(tpl, func(key string) string {
		val, set := env(key)
		if !set {
			ok = false
		}
		return val
	})
	return expanded, ok
}

// expandDirs resolves a directory template into zero or more concrete
// directories. With a pinned version the token substitutes literally. With
// no pin the token becomes a wildcard: the parent directory is listed and
// every version-named child is returned, highest version first.
func (l *Locator) expandDirs(tpl, version string) []string {
	dir, ok := expandEnvVars(tpl, l.env)
	if !ok {
		l.log.Debug().Str("template", tpl).Msg("skipping candidate, env var unset")
		return nil
	}

	if !strings.Contains(dir, versionToken) {
		return []string{dir}
	}

	if version != "" {
		return []string{strings.ReplaceAll(dir, versionToken, version)}
	}

	return l.globVersions(dir)
}

// globVersions lists the parent of the {version} segment and returns every
// matching child directory, sorted highest version first.
func (l *Locator) globVersions(dir string) []string {
	idx := strings.Index(dir, versionToken)
	head := dir[:idx]
	suffix := dir[idx+len(versionToken):]

	slash := strings.LastIndex(head, "/")
	if slash < 0 || strings.Contains(suffix, "/") {
		// Token must live in the final segment; templates guarantee this
		return nil
	}
	parent := head[:slash]
	if parent == "" {
		parent = "/"
	}
	prefix := head[slash+1:]

	entries, err := afero.ReadDir(l.fs, parent)
	if err != nil {
		l.log.Debug().Str("dir", parent).Err(err).Msg("version scan skipped")
		return nil
	}

	type match struct {
		version string
		path    string
	}
	var matches []match
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		ver := name[len(prefix) : len(name)-len(suffix)]
		if !looksLikeVersion(ver) {
			continue
		}
		matches = append(matches, match{version: ver, path: path.Join(parent, name)})
	}

	// Highest version first so the first existence hit is the newest install
	sort.SliceStable(matches, func(i, j int) bool {
		return compareVersions(matches[i].version, matches[j].version) > 0
	})

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		dirs = append(dirs, m.path)
	}
	return dirs
}

// looksLikeVersion accepts strings like "2025", "4.2" or "2024.1LTS"
func looksLikeVersion(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}

// compareVersions orders dot-separated versions numerically per component,
// so 2024.10 sorts above 2024.9 and 2025 above 2024.2. Non-numeric
// components fall back to string comparison.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var ac, bc string
		if i < len(as) {
			ac = as[i]
		}
		if i < len(bs) {
			bc = bs[i]
		}
		ai, aerr := strconv.Atoi(ac)
		bi, berr := strconv.Atoi(bc)
		switch {
		case aerr == nil && berr == nil:
			if ai != bi {
				if ai > bi {
					return 1
				}
				return -1
			}
		default:
			if ac != bc {
				if ac > bc {
					return 1
				}
				return -1
			}
		}
	}
	return 0
}
