package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runListCmd(t *testing.T, args ...string) []listEntry {
	t.Helper()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	var out bytes.Buffer
	cmd := NewListCmd(cfg, &logger)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())

	var entries []listEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	return entries
}

func TestListCmdJSON(t *testing.T) {
	entries := runListCmd(t, "--json", "--platform", "linux")

	byApp := map[string]listEntry{}
	for _, e := range entries {
		byApp[e.App] = e
	}

	maya, ok := byApp["maya"]
	require.True(t, ok, "maya missing from list output")
	assert.Equal(t, "Autodesk Maya", maya.DisplayName)
	assert.Equal(t, "maya", maya.Executable)
	assert.Equal(t, "MAYA_LOCATION", maya.OverrideVar)
	assert.Contains(t, maya.Candidates, "/usr/autodesk/maya{version}/bin/maya")

	// Blender is PATH-only on Linux but still listed
	blender, ok := byApp["blender"]
	require.True(t, ok, "blender missing from list output")
	assert.Empty(t, blender.Candidates)
}

func TestListCmdPlatformWithoutApp(t *testing.T) {
	entries := runListCmd(t, "--json", "--platform", "darwin")

	for _, e := range entries {
		// MotionBuilder ships for Windows and Linux only
		assert.NotEqual(t, "mobu", e.App)
		assert.NotEqual(t, "mobupy", e.App)
	}
}

func TestListCmdFilter(t *testing.T) {
	entries := runListCmd(t, "--json", "--platform", "linux", "--filter", "blender")

	require.Len(t, entries, 1)
	assert.Equal(t, "blender", entries[0].App)
}
