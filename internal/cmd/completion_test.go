package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewCompletionCmd(t *testing.T) {
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewCompletionCmd(cfg, &logger)

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "completion")
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
}

func TestCompletionCmdRejectsUnknownShell(t *testing.T) {
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	root := NewRootCmd(cfg, &logger, "dev")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"completion", "tcsh"})

	err := root.Execute()
	assert.Error(t, err)
}
