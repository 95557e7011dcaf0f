package linker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/fablink/internal/annotations"
	"github.com/vk/fablink/internal/device"
)

func TestExplicitAnnotation(t *testing.T) {
	h, _, ble := bleFixture(t)
	l := New(h, []annotations.Record{bleModeRecord("logic")}, Options{})

	require.NoError(t, l.annotateExplicitModes(context.Background()))

	m, ok := l.store.PhysicalMode(ble)
	require.True(t, ok)
	assert.Equal(t, "logic", h.ModeName(m))
}

func TestExplicitOperatingSideFires(t *testing.T) {
	// A mode annotation may name the block through its operating path.
	h, _, ble := bleFixture(t)
	rec := annotations.Record{
		Operating: device.PathSpec{
			Blocks: []string{"clb", "ble"},
			Modes:  []string{"default"},
		},
		PhysicalMode: "arith",
	}
	l := New(h, []annotations.Record{rec}, Options{})

	require.NoError(t, l.annotateExplicitModes(context.Background()))

	m, ok := l.store.PhysicalMode(ble)
	require.True(t, ok)
	assert.Equal(t, "arith", h.ModeName(m))
}

func TestExplicitModeNotFound(t *testing.T) {
	h, _, _ := bleFixture(t)
	l := New(h, []annotations.Record{bleModeRecord("dsp")}, Options{})

	err := l.annotateExplicitModes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModeNotFound)
	assert.ErrorContains(t, err, "ble")
}

func TestExplicitPathNotFound(t *testing.T) {
	h, _, _ := bleFixture(t)
	rec := annotations.Record{
		Physical: device.PathSpec{
			Blocks: []string{"clb", "dsp"},
			Modes:  []string{"default"},
		},
		PhysicalMode: "mult",
	}
	l := New(h, []annotations.Record{rec}, Options{})

	err := l.annotateExplicitModes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.ErrorContains(t, err, "dsp")
}

func TestExplicitFailFastStopsPhase(t *testing.T) {
	h, _, ble := bleFixture(t)
	bad := annotations.Record{
		Physical:     device.PathSpec{Blocks: []string{"nope"}},
		PhysicalMode: "x",
	}
	records := []annotations.Record{bad, bleModeRecord("logic")}
	l := New(h, records, Options{ErrorPolicy: PolicyFailFast})

	err := l.annotateExplicitModes(context.Background())
	require.ErrorIs(t, err, ErrPathNotFound)

	// The valid record after the bad one was never processed.
	_, ok := l.store.PhysicalMode(ble)
	assert.False(t, ok)
}

func TestExplicitCollectReportsEverything(t *testing.T) {
	h, _, ble := bleFixture(t)
	badPath := annotations.Record{
		Physical:     device.PathSpec{Blocks: []string{"nope"}},
		PhysicalMode: "x",
	}
	records := []annotations.Record{badPath, bleModeRecord("dsp"), bleModeRecord("logic")}
	l := New(h, records, Options{ErrorPolicy: PolicyCollect})

	err := l.annotateExplicitModes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.ErrorIs(t, err, ErrModeNotFound)

	// The valid record still landed despite the earlier failures.
	m, ok := l.store.PhysicalMode(ble)
	require.True(t, ok)
	assert.Equal(t, "logic", h.ModeName(m))
}

func TestExplicitFirstWriterWins(t *testing.T) {
	h, _, ble := bleFixture(t)
	records := []annotations.Record{bleModeRecord("logic"), bleModeRecord("arith")}
	l := New(h, records, Options{})

	require.NoError(t, l.annotateExplicitModes(context.Background()))

	m, ok := l.store.PhysicalMode(ble)
	require.True(t, ok)
	assert.Equal(t, "logic", h.ModeName(m), "the second annotation is a skip, not an overwrite")
}

func TestExplicitInvalidSpec(t *testing.T) {
	h, _, _ := bleFixture(t)
	rec := annotations.Record{
		// Two block names but no mode names.
		Physical:     device.PathSpec{Blocks: []string{"clb", "ble"}},
		PhysicalMode: "logic",
	}
	l := New(h, []annotations.Record{rec}, Options{})

	err := l.annotateExplicitModes(context.Background())
	assert.Error(t, err)
}
