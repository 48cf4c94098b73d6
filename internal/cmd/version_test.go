package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd("1.2.3")

	assert.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)

	require.NotNil(t, cmd.Run)
}
