package dcc

import (
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options tunes a single lookup
type Options struct {
	// Version pins the application version (e.g. "2025", "4.2"). Empty
	// means unpinned: version-wildcard candidates resolve to the highest
	// installed version.
	Version string
	// InstallDir overrides the search entirely: only this directory is
	// probed for the executable.
	InstallDir string
}

// registryFunc resolves an install dir from the Windows registry.
// Implemented per-platform; the non-Windows build always misses.
type registryFunc func(app App, version string) (string, bool)

// Locator finds DCC application executables. It holds no mutable state and
// is safe for concurrent use. The filesystem, environment and platform are
// injected so tests can run against a fake filesystem.
type Locator struct {
	fs       afero.Fs
	env      EnvLookup
	platform string
	log      zerolog.Logger
	registry registryFunc
}

// New creates a Locator backed by the real filesystem and environment
func New() *Locator {
	return &Locator{
		fs:       afero.NewOsFs(),
		env:      os.LookupEnv,
		platform: runtime.GOOS,
		log:      zerolog.Nop(),
		registry: registryLookup,
	}
}

// NewWithFs creates a Locator with an explicit filesystem, environment and
// platform (useful for tests)
func NewWithFs(fs afero.Fs, env EnvLookup, platform string) *Locator {
	return &Locator{
		fs:       fs,
		env:      env,
		platform: platform,
		log:      zerolog.Nop(),
	}
}

// WithLogger attaches a logger for debug output during lookups
func (l *Locator) WithLogger(log zerolog.Logger) *Locator {
	l.log = log
	return l
}

// Find returns the first existing executable path for app. The path exists
// at the moment of the check; the caller owns whatever happens after.
func (l *Locator) Find(app App, opts Options) (string, error) {
	found, err := l.locate(app, opts, true)
	if err != nil {
		return "", err
	}
	return found[0], nil
}

// FindAll returns every existing executable path for app in priority order
func (l *Locator) FindAll(app App, opts Options) ([]string, error) {
	return l.locate(app, opts, false)
}

// Find locates app with a default Locator against the real filesystem
func Find(app App, opts Options) (string, error) {
	return New().Find(app, opts)
}

// FindAll locates every installed copy of app on the real filesystem
func FindAll(app App, opts Options) ([]string, error) {
	return New().FindAll(app, opts)
}

// CandidateTemplates returns the unexpanded candidate paths for the given
// pair, for display and diagnostics. No filesystem access.
func CandidateTemplates(app App, platform string) ([]string, error) {
	platforms, ok := candidateTable[app]
	if !ok {
		return nil, &UnknownAppError{Name: string(app)}
	}
	cands, ok := platforms[platform]
	if !ok {
		return nil, &UnsupportedPlatformError{App: app, Platform: platform}
	}
	templates := make([]string, 0, len(cands))
	for _, c := range cands {
		templates = append(templates, path.Join(c.dir, c.exe))
	}
	return templates, nil
}

// locate runs the full search. Precedence: explicit InstallDir, then the
// per-app env override, then a PATH probe (Blender), then the static table
// with the Windows registry as the final fallback.
func (l *Locator) locate(app App, opts Options, firstOnly bool) ([]string, error) {
	platforms, ok := candidateTable[app]
	if !ok {
		return nil, &UnknownAppError{Name: string(app)}
	}
	cands, ok := platforms[l.platform]
	if !ok {
		return nil, &UnsupportedPlatformError{App: app, Platform: l.platform}
	}

	var (
		tried []string
		found []string
		seen  = map[string]bool{}
	)
	probe := func(p string) bool {
		tried = append(tried, p)
		if !l.isExecutable(p) {
			return false
		}
		if !seen[p] {
			seen[p] = true
			found = append(found, p)
			l.log.Debug().Str("app", string(app)).Str("path", p).Msg("executable located")
		}
		return true
	}
	exeRels := exeRelPaths(app, l.platform, cands)

	// Explicit install dir preempts everything else
	if opts.InstallDir != "" {
		for _, rel := range exeRels {
			if probe(path.Join(opts.InstallDir, rel)) && firstOnly {
				return found, nil
			}
		}
		if len(found) == 0 {
			return nil, &NotFoundError{App: app, Platform: l.platform, Tried: tried}
		}
		return found, nil
	}

	// Env override (MAYA_LOCATION and friends). With a pinned version the
	// override is honored only when the version appears in its value.
	if v := app.OverrideVar(); v != "" {
		if loc, set := l.env(v); set && loc != "" {
			if opts.Version == "" || strings.Contains(loc, opts.Version) {
				for _, rel := range exeRels {
					if probe(path.Join(loc, rel)) && firstOnly {
						return found, nil
					}
				}
			}
		}
	}

	if pathProbeApps[app] {
		exe := app.ExeName(l.platform)
		if p, ok := l.lookPath(exe); ok && (opts.Version == "" || strings.Contains(p, opts.Version)) {
			if probe(p) && firstOnly {
				return found, nil
			}
		} else {
			tried = append(tried, exe+" (in PATH)")
		}
	}

	for _, c := range cands {
		for _, dir := range l.expandDirs(c.dir, opts.Version) {
			if probe(path.Join(dir, c.exe)) && firstOnly {
				return found, nil
			}
		}
	}

	// Registry is version-keyed, so an unpinned lookup skips it
	if l.platform == PlatformWindows && l.registry != nil && opts.Version != "" {
		if loc, ok := l.registry(app, opts.Version); ok {
			for _, rel := range exeRels {
				if probe(path.Join(loc, rel)) && firstOnly {
					return found, nil
				}
			}
		}
	}

	if len(found) == 0 {
		return nil, &NotFoundError{App: app, Platform: l.platform, Tried: tried}
	}
	return found, nil
}

// exeRelPaths returns the executable paths relative to an install dir.
// Platforms with no static candidates (Blender on Linux) fall back to the
// bare executable name.
func exeRelPaths(app App, platform string, cands []candidate) []string {
	var rels []string
	seen := map[string]bool{}
	for _, c := range cands {
		if !seen[c.exe] {
			seen[c.exe] = true
			rels = append(rels, c.exe)
		}
	}
	if len(rels) == 0 {
		rels = append(rels, app.ExeName(platform))
	}
	return rels
}

// isExecutable reports whether p is a regular file the user could run.
// Windows has no exec bit, so existence is enough there.
func (l *Locator) isExecutable(p string) bool {
	info, err := l.fs.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if l.platform == PlatformWindows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
