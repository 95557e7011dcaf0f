package device

import (
	"fmt"
	"strings"
)

// PathSpec identifies one block's location in a hierarchy as an alternating
// walk of block names and mode names: Blocks[0] names a root, Modes[i] names
// the mode taken inside Blocks[i] to reach Blocks[i+1]. A valid spec has
// exactly one more block name than mode names.
type PathSpec struct {
	Blocks []string
	Modes  []string
}

// Validate checks the structural invariant of the spec.
func (s PathSpec) Validate() error {
	if len(s.Blocks) == 0 {
		return fmt.Errorf("path spec has no block names")
	}
	if len(s.Blocks) != len(s.Modes)+1 {
		return fmt.Errorf("path spec has %d block names but %d mode names, want %d",
			len(s.Blocks), len(s.Modes), len(s.Blocks)-1)
	}
	return nil
}

// Leaf returns the name of the block the spec points at.
func (s PathSpec) Leaf() string {
	if len(s.Blocks) == 0 {
		return ""
	}
	return s.Blocks[len(s.Blocks)-1]
}

// String renders the walk for diagnostics, e.g. "clb[default].ble".
func (s PathSpec) String() string {
	var sb strings.Builder
	for i, name := range s.Blocks {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(name)
		if i < len(s.Modes) {
			sb.WriteRune('[')
			sb.WriteString(s.Modes[i])
			sb.WriteRune(']')
		}
	}
	return sb.String()
}

// Resolve walks a validated spec down from the given root and returns the
// block it lands on. The walk is strict: the root must carry the first block
// name, every intermediate block must have the named mode, and every named
// mode must have a child with the next block name. Any mismatch fails the
// whole attempt; callers try the next candidate root, if any.
func (h *Hierarchy) Resolve(root BlockID, spec PathSpec) (BlockID, bool) {
	if h.blocks[root].name != spec.Blocks[0] {
		return NoBlock, false
	}
	cur := root
	for i := 0; i < len(spec.Modes); i++ {
		m, ok := h.FindMode(cur, spec.Modes[i])
		if !ok {
			return NoBlock, false
		}
		child, ok := h.FindChild(m, spec.Blocks[i+1])
		if !ok {
			return NoBlock, false
		}
		cur = child
	}
	return cur, true
}
