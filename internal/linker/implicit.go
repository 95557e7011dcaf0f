package linker

import (
	"context"
	"log/slog"

	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/device"
)

// inferPhysicalModes completes the physical-mode selection for every block
// reachable under already-chosen modes, starting from each root. It
// returns the number of unresolved ambiguities. Must run only after
// annotateExplicitModes has finished for the whole tree.
func (l *Linker) inferPhysicalModes(ctx context.Context) int {
	logger := ctxlog.FromContext(ctx)
	errCount := 0
	for _, root := range l.hier.Roots() {
		seen := make(map[device.BlockID]bool)
		l.recInferMode(logger, root, seen, &errCount)
	}
	return errCount
}

// recInferMode visits one block depth-first. Primitive blocks need no
// mode. A sole mode is the unambiguous default. A multi-mode block with no
// explicit binding is an unrecoverable ambiguity: mode index 0 is bound as
// a placeholder so the walk can keep finding errors elsewhere, but the
// walk does not descend under it. Recursion follows only the chosen mode's
// children; non-chosen subtrees stay unannotated by construction.
func (l *Linker) recInferMode(logger *slog.Logger, b device.BlockID, seen map[device.BlockID]bool, errCount *int) {
	if l.hier.IsPrimitive(b) {
		return
	}
	// The hierarchy is a tree by external-input invariant; revisiting a
	// block means that invariant is broken, so stop instead of recursing
	// forever.
	if seen[b] {
		logger.Error("Cycle detected in block hierarchy, aborting this walk.",
			"block", l.hier.BlockName(b))
		*errCount++
		return
	}
	seen[b] = true

	modes := l.hier.Modes(b)
	if _, bound := l.store.PhysicalMode(b); !bound {
		if len(modes) == 1 {
			l.store.BindMode(b, modes[0])
			logger.Info("Implicitly inferred physical mode.",
				"block", l.hier.BlockName(b), "mode", l.hier.ModeName(modes[0]))
		} else {
			// Placeholder so deeper errors still surface in the same run.
			l.store.BindMode(b, modes[0])
			logger.Error("Unable to find a physical mode for a multi-mode block, please annotate it explicitly.",
				"block", l.hier.BlockName(b), "modes", len(modes))
			*errCount++
			return
		}
	}

	chosen, _ := l.store.PhysicalMode(b)
	for _, child := range l.hier.Children(chosen) {
		l.recInferMode(logger, child, seen, errCount)
	}
}
