package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/pkg/dcc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewPickCmd(cfg, &logger)

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "pick")
	assert.NotNil(t, cmd.Flags().Lookup("version"))
}

func TestPickCmdUnknownApp(t *testing.T) {
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewPickCmd(cfg, &logger)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"nuke"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, dcc.ErrUnknownApp)
}
