package dcc

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnvVars(t *testing.T) {
	env := fakeEnv(map[string]string{"PROGRAMFILES": "C:/Program Files"})

	tests := []struct {
		name     string
		template string
		want     string
		wantOK   bool
	}{
		{"no vars", "/usr/autodesk/maya2025", "/usr/autodesk/maya2025", true},
		{"set var", "${PROGRAMFILES}/Autodesk", "C:/Program Files/Autodesk", true},
		{"unset var", "${LOCALAPPDATA}/Programs", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := expandEnvVars(tt.template, env)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExpandDirsPinnedVersion(t *testing.T) {
	loc := NewWithFs(afero.NewMemMapFs(), fakeEnv(nil), PlatformLinux)

	dirs := loc.expandDirs("/usr/autodesk/maya{version}", "2024")
	assert.Equal(t, []string{"/usr/autodesk/maya2024"}, dirs)
}

func TestGlobVersionsHighestFirst(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, d := range []string{
		"/usr/autodesk/maya2023",
		"/usr/autodesk/maya2025",
		"/usr/autodesk/maya2024",
		"/usr/autodesk/mayaold", // no version suffix, ignored
		"/usr/autodesk/MotionBuilder2025",
	} {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
	// Plain files never match, only directories
	require.NoError(t, afero.WriteFile(fs, "/usr/autodesk/maya2026", []byte("x"), 0o644))

	loc := NewWithFs(fs, fakeEnv(nil), PlatformLinux)

	dirs := loc.expandDirs("/usr/autodesk/maya{version}", "")
	assert.Equal(t, []string{
		"/usr/autodesk/maya2025",
		"/usr/autodesk/maya2024",
		"/usr/autodesk/maya2023",
	}, dirs)
}

func TestGlobVersionsMissingParent(t *testing.T) {
	loc := NewWithFs(afero.NewMemMapFs(), fakeEnv(nil), PlatformLinux)

	dirs := loc.expandDirs("/nowhere/maya{version}", "")
	assert.Empty(t, dirs)
}

func TestLooksLikeVersion(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025", true},
		{"4.2", true},
		{"2024.1LTS", true},
		{"2024-update1", true},
		{"", false},
		{"old", false},
		{"v2025", false},
		{"2025 beta", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeVersion(tt.input))
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2025", "2024", 1},
		{"2024", "2025", -1},
		{"2024", "2024", 0},
		{"2024.10", "2024.9", 1},
		{"2024.1", "2024", 1},
		{"2025", "2024.2", 1},
		{"4.2", "4.2.1", -1},
	}

	for _, tt := range tests {
		got := compareVersions(tt.a, tt.b)
		assert.Equal(t, tt.want, got, "compareVersions(%q, %q)", tt.a, tt.b)
	}
}
