package linker

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/fablink/internal/ctxlog"
)

// annotateExplicitModes applies every mode annotation from the record
// list. Each record resolves through the roots whose name matches the head
// of its path; the first successful resolution wins and the named mode is
// bound as that block's physical mode. A record that resolves nowhere, or
// that names a mode absent on the resolved block, fails the phase — at
// once under PolicyFailFast, after all records under PolicyCollect.
func (l *Linker) annotateExplicitModes(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []error

	for _, rec := range l.records {
		if !rec.IsModeAnnotation() {
			continue
		}

		spec := rec.ModeTarget()
		if err := spec.Validate(); err != nil {
			err = fmt.Errorf("mode annotation for %q: %w", spec.Leaf(), err)
			if l.opts.ErrorPolicy == PolicyFailFast {
				return err
			}
			errs = append(errs, err)
			continue
		}

		target, ok := l.findInRoots(spec)
		if !ok {
			err := fmt.Errorf("unable to find block %q (path %s): %w",
				spec.Leaf(), spec, ErrPathNotFound)
			if l.opts.ErrorPolicy == PolicyFailFast {
				return err
			}
			errs = append(errs, err)
			continue
		}

		m, ok := l.hier.FindMode(target, rec.PhysicalMode)
		if !ok {
			err := fmt.Errorf("block %q has no mode %q: %w",
				l.hier.BlockName(target), rec.PhysicalMode, ErrModeNotFound)
			if l.opts.ErrorPolicy == PolicyFailFast {
				return err
			}
			errs = append(errs, err)
			continue
		}

		if l.store.BindMode(target, m) {
			logger.Info("Annotated block with physical mode.",
				"block", l.hier.BlockName(target), "mode", rec.PhysicalMode)
		} else {
			logger.Debug("Block already has a physical mode, skipping.",
				"block", l.hier.BlockName(target), "mode", rec.PhysicalMode)
		}
	}

	return errors.Join(errs...)
}
