package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionalPath(t *testing.T) {
	out := &bytes.Buffer{}
	inv, exit, err := Parse([]string{"device.hcl"}, out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "device.hcl", inv.ArchPath)
	assert.Equal(t, "failfast", inv.Options.ErrorPolicy)
}

func TestParseFlagsOverride(t *testing.T) {
	out := &bytes.Buffer{}
	inv, exit, err := Parse([]string{
		"-arch", "device.hcl",
		"-log-level", "debug",
		"-error-policy", "collect",
	}, out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "device.hcl", inv.ArchPath)
	assert.Equal(t, "debug", inv.Options.LogLevel)
	assert.Equal(t, "collect", inv.Options.ErrorPolicy)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	_, exit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseInvalidPolicy(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-error-policy", "sometimes", "device.hcl"}, out)
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseUnknownFlag(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--not-a-flag"}, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
