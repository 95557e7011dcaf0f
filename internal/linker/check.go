package linker

import (
	"context"
	"log/slog"

	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/device"
)

// checkPhysicalModes verifies the single-physical-chain invariant over the
// whole tree: every non-primitive block on the physical chain has exactly
// one physical mode bound, and no block outside the chain has any. The
// walk covers all modes of every block, not just the chosen ones, so stray
// bindings in non-chosen subtrees are found too. Returns the violation
// count; zero means the check passed.
func (l *Linker) checkPhysicalModes(ctx context.Context) int {
	logger := ctxlog.FromContext(ctx)
	errCount := 0
	for _, root := range l.hier.Roots() {
		seen := make(map[device.BlockID]bool)
		// Roots are on the physical chain by definition.
		l.recCheckMode(logger, root, true, seen, &errCount)
	}
	if errCount == 0 {
		logger.Info("Physical mode annotation check passed.")
	} else {
		logger.Error("Physical mode annotation check failed.", "errors", errCount)
	}
	return errCount
}

// recCheckMode checks one block and recurses into the children of every
// mode. A child expects a physical mode iff its parent does and it sits
// under the parent's chosen mode.
func (l *Linker) recCheckMode(logger *slog.Logger, b device.BlockID, expectPhysical bool, seen map[device.BlockID]bool, errCount *int) {
	if l.hier.IsPrimitive(b) {
		return
	}
	if seen[b] {
		logger.Error("Cycle detected in block hierarchy, aborting this walk.",
			"block", l.hier.BlockName(b))
		*errCount++
		return
	}
	seen[b] = true

	chosen, bound := l.store.PhysicalMode(b)
	if expectPhysical {
		if !bound {
			logger.Error("Missing physical mode for a multi-mode block.",
				"block", l.hier.BlockName(b))
			*errCount++
			return
		}
	} else {
		if bound {
			logger.Error("Found a physical mode on a block that is not under any physical mode.",
				"block", l.hier.BlockName(b), "mode", l.hier.ModeName(chosen))
			*errCount++
			return
		}
	}

	for _, m := range l.hier.Modes(b) {
		expectChild := expectPhysical && bound && m == chosen
		for _, child := range l.hier.Children(m) {
			l.recCheckMode(logger, child, expectChild, seen, errCount)
		}
	}
}
