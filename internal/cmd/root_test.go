package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "dccfind", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "find")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "doctor")
	assert.Contains(t, names, "pick")
	assert.Contains(t, names, "completion")
	assert.Contains(t, names, "version")
}
