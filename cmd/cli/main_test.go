package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDevice = `
block "clb" {
  mode "default" {
    block "ble" {
      mode "arith" {
        block "adder" {}
      }
      mode "logic" {
        block "lut" {}
      }
    }
  }
}

annotate {
  physical_path  = ["clb", "ble"]
  physical_modes = ["default"]
  physical_mode  = "logic"
}
`

func TestRun_FullLink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "device.hcl")
	require.NoError(t, os.WriteFile(path, []byte(testDevice), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Linked 2 physical modes")
	assert.Contains(t, out.String(), "check passed")
}

func TestRun_AmbiguousDevice(t *testing.T) {
	// Without the annotation, ble is ambiguous: the run completes but
	// reports the unresolved block.
	ambiguous := `
block "clb" {
  mode "default" {
    block "ble" {
      mode "arith" {
        block "adder" {}
      }
      mode "logic" {
        block "lut" {}
      }
    }
  }
}
`
	dir := t.TempDir()
	path := filepath.Join(dir, "device.hcl")
	require.NoError(t, os.WriteFile(path, []byte(ambiguous), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resolvable physical mode")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_MissingFile(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{filepath.Join(t.TempDir(), "nope.hcl")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
