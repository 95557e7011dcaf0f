package linker

import (
	"context"
	"errors"
	"time"

	"github.com/vk/fablink/internal/annotations"
	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/device"
)

// ErrorPolicy controls how a phase reacts to the first resolution failure.
type ErrorPolicy string

const (
	// PolicyFailFast stops a phase at its first resolution or pairing
	// error, leaving later records unprocessed. This matches the
	// historical behavior of the pass.
	PolicyFailFast ErrorPolicy = "failfast"

	// PolicyCollect attempts every record in a phase, accumulates all
	// resolution errors and fails the phase once at the end, so a single
	// bad annotation cannot hide diagnostics for the ones after it.
	PolicyCollect ErrorPolicy = "collect"
)

// Options configure one linking run.
type Options struct {
	ErrorPolicy ErrorPolicy
}

// Linker runs the linking phases over one hierarchy and one annotation
// list. It owns the store; nothing here touches global state.
type Linker struct {
	hier    *device.Hierarchy
	records []annotations.Record
	store   *annotations.Store
	opts    Options
}

// Result summarizes one run. Phase errors are returned separately by Run;
// the counts here cover the diagnostics that do not abort phases.
type Result struct {
	// InferErrors counts unresolved ambiguities found by implicit
	// inference (multi-mode blocks with no explicit annotation).
	InferErrors int

	// CheckErrors counts single-physical-chain violations found by the
	// consistency check. CheckPassed is its pass/fail summary.
	CheckErrors int
	CheckPassed bool

	// Binding tallies, for reporting.
	ModeBindings int
	BlockPairs   int
	PortPairs    int

	Elapsed time.Duration
}

// New creates a linker over an already-built hierarchy and annotation
// list. A fresh store is created for the run.
func New(hier *device.Hierarchy, records []annotations.Record, opts Options) *Linker {
	if opts.ErrorPolicy == "" {
		opts.ErrorPolicy = PolicyFailFast
	}
	return &Linker{
		hier:    hier,
		records: records,
		store:   annotations.NewStore(),
		opts:    opts,
	}
}

// Store exposes the accumulated bindings. Read-only for callers; consumed
// by downstream linking stages after Run returns.
func (l *Linker) Store() *annotations.Store {
	return l.store
}

// Run executes the phases in their fixed order: explicit mode annotation,
// implicit mode inference, consistency check, block/port pairing. A phase
// abort does not stop the run — later phases still execute over whatever
// the earlier ones managed to bind, matching the historical pass — so the
// Result is always populated. The returned error joins the explicit and
// pairing phase failures, if any.
func (l *Linker) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	logger.Info("Linking operating and physical block hierarchies.")

	res := &Result{}

	explicitErr := l.annotateExplicitModes(ctx)
	if explicitErr != nil {
		logger.Error("Explicit physical mode annotation aborted.", "error", explicitErr)
	}

	res.InferErrors = l.inferPhysicalModes(ctx)

	res.CheckErrors = l.checkPhysicalModes(ctx)
	res.CheckPassed = res.CheckErrors == 0

	pairErr := l.pairBlocks(ctx)
	if pairErr != nil {
		logger.Error("Block pairing aborted.", "error", pairErr)
	}

	res.ModeBindings = l.store.ModeCount()
	res.BlockPairs = l.store.BlockCount()
	res.PortPairs = l.store.PortCount()
	res.Elapsed = time.Since(start)

	logger.Info("Linking finished.",
		"elapsed", res.Elapsed,
		"mode_bindings", res.ModeBindings,
		"block_pairs", res.BlockPairs,
		"port_pairs", res.PortPairs,
		"infer_errors", res.InferErrors,
		"check_errors", res.CheckErrors,
	)

	return res, errors.Join(explicitErr, pairErr)
}

// findInRoots resolves a spec against every root whose name matches the
// head of the spec and returns the first hit.
func (l *Linker) findInRoots(spec device.PathSpec) (device.BlockID, bool) {
	for _, root := range l.hier.Roots() {
		if l.hier.BlockName(root) != spec.Blocks[0] {
			continue
		}
		if b, ok := l.hier.Resolve(root, spec); ok {
			return b, true
		}
	}
	return device.NoBlock, false
}
