package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHierarchy builds:
//
//	clb[default] -> ble
//	ble[arith]   -> adder
//	ble[logic]   -> lut
func testHierarchy(t *testing.T) (*Hierarchy, BlockID, BlockID) {
	t.Helper()
	h := New()
	clb := h.AddRoot("clb")
	def := h.AddMode(clb, "default")
	ble := h.AddChild(def, "ble")
	arith := h.AddMode(ble, "arith")
	h.AddChild(arith, "adder")
	logic := h.AddMode(ble, "logic")
	h.AddChild(logic, "lut")
	return h, clb, ble
}

func TestPathSpecValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, PathSpec{Blocks: []string{"clb"}}.Validate())
		assert.NoError(t, PathSpec{
			Blocks: []string{"clb", "ble"},
			Modes:  []string{"default"},
		}.Validate())
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorContains(t, PathSpec{}.Validate(), "no block names")
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := PathSpec{Blocks: []string{"clb", "ble"}}.Validate()
		assert.ErrorContains(t, err, "mode names")
	})
}

func TestPathSpecString(t *testing.T) {
	s := PathSpec{
		Blocks: []string{"clb", "ble", "lut"},
		Modes:  []string{"default", "logic"},
	}
	assert.Equal(t, "clb[default].ble[logic].lut", s.String())
	assert.Equal(t, "lut", s.Leaf())
}

func TestResolve(t *testing.T) {
	h, clb, ble := testHierarchy(t)

	t.Run("single element matches root", func(t *testing.T) {
		got, ok := h.Resolve(clb, PathSpec{Blocks: []string{"clb"}})
		require.True(t, ok)
		assert.Equal(t, clb, got)
	})

	t.Run("single element wrong root", func(t *testing.T) {
		_, ok := h.Resolve(clb, PathSpec{Blocks: []string{"io"}})
		assert.False(t, ok)
	})

	t.Run("walk to child", func(t *testing.T) {
		got, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"clb", "ble"},
			Modes:  []string{"default"},
		})
		require.True(t, ok)
		assert.Equal(t, ble, got)
	})

	t.Run("walk two levels", func(t *testing.T) {
		got, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"clb", "ble", "lut"},
			Modes:  []string{"default", "logic"},
		})
		require.True(t, ok)
		assert.Equal(t, "lut", h.BlockName(got))
	})

	t.Run("head name mismatch", func(t *testing.T) {
		_, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"io", "ble"},
			Modes:  []string{"default"},
		})
		assert.False(t, ok)
	})

	t.Run("missing mode", func(t *testing.T) {
		_, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"clb", "ble"},
			Modes:  []string{"fast"},
		})
		assert.False(t, ok)
	})

	t.Run("missing child", func(t *testing.T) {
		_, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"clb", "dsp"},
			Modes:  []string{"default"},
		})
		assert.False(t, ok)
	})

	t.Run("mismatch deep in the walk", func(t *testing.T) {
		_, ok := h.Resolve(clb, PathSpec{
			Blocks: []string{"clb", "ble", "adder"},
			Modes:  []string{"default", "logic"},
		})
		assert.False(t, ok)
	})
}
