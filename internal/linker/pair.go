package linker

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/fablink/internal/annotations"
	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/device"
)

// stagedPort is a port binding held back until every port of a block pair
// has matched. Nothing is committed to the store for a pair that fails.
type stagedPort struct {
	operating device.PortID
	binding   annotations.PortBinding
}

// pairBlocks applies every pairing annotation: both paths must resolve
// under the same root, and every port of the operating block must map onto
// a physical port with a contained range. A pair that succeeds under no
// root fails the phase, subject to the error policy. Must run after the
// physical-mode phases.
func (l *Linker) pairBlocks(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []error

	for _, rec := range l.records {
		if !rec.IsPairing() {
			continue
		}

		if err := l.pairOne(ctx, rec); err != nil {
			if l.opts.ErrorPolicy == PolicyFailFast {
				return err
			}
			errs = append(errs, err)
			continue
		}

		logger.Info("Paired operating block with physical block.",
			"operating", rec.Operating.Leaf(), "physical", rec.Physical.Leaf())
	}

	return errors.Join(errs...)
}

// pairOne tries one pairing record against every candidate root. Roots are
// candidates when their name matches the head of the operating path; both
// paths must resolve under the same root and the port pairing must succeed
// in full before anything is committed.
func (l *Linker) pairOne(ctx context.Context, rec annotations.Record) error {
	if err := rec.Operating.Validate(); err != nil {
		return fmt.Errorf("pairing annotation for %q: %w", rec.Operating.Leaf(), err)
	}
	if err := rec.Physical.Validate(); err != nil {
		return fmt.Errorf("pairing annotation for %q: %w", rec.Physical.Leaf(), err)
	}

	lastErr := error(ErrPathNotFound)
	for _, root := range l.hier.Roots() {
		if l.hier.BlockName(root) != rec.Operating.Blocks[0] {
			continue
		}
		operating, ok := l.hier.Resolve(root, rec.Operating)
		if !ok {
			continue
		}
		physical, ok := l.hier.Resolve(root, rec.Physical)
		if !ok {
			continue
		}

		staged, err := l.pairPorts(operating, physical, rec)
		if err != nil {
			// Remember why this root failed, then try the next one.
			lastErr = err
			continue
		}

		for _, sp := range staged {
			l.store.BindPort(sp.operating, sp.binding)
		}
		l.store.BindBlock(operating, physical)
		return nil
	}

	return fmt.Errorf("unable to pair operating block %q (path %s) with physical block %q (path %s): %w",
		rec.Operating.Leaf(), rec.Operating, rec.Physical.Leaf(), rec.Physical, lastErr)
}

// pairPorts matches every port of the operating block onto the physical
// block. The expectation for each port comes from the record's explicit
// port map when present, otherwise it defaults to same name and same
// width at offset zero. All ports must match; the bindings are returned
// staged, not committed.
func (l *Linker) pairPorts(operating, physical device.BlockID, rec annotations.Record) ([]stagedPort, error) {
	var staged []stagedPort

	for _, opPort := range l.hier.Ports(operating) {
		opName := l.hier.PortName(opPort)

		want := annotations.PortRef{Name: opName, Width: l.hier.PortWidth(opPort)}
		if ref, ok := rec.Ports[opName]; ok {
			want = ref
			if want.Width == 0 {
				want.Width = l.hier.PortWidth(opPort)
			}
		}

		phyPort, ok := l.hier.FindPort(physical, want.Name)
		if !ok {
			return nil, fmt.Errorf("operating port %q expects physical port %q on block %q: %w",
				opName, want.Name, l.hier.BlockName(physical), ErrPortNotFound)
		}

		rng := annotations.Range{LSB: want.LSB, Width: want.Width}
		if !rng.ContainedIn(l.hier.PortWidth(phyPort)) {
			return nil, fmt.Errorf("operating port %q expects bits [%d, %d) of physical port %q, which is %d bits wide: %w",
				opName, rng.LSB, rng.LSB+rng.Width, want.Name, l.hier.PortWidth(phyPort), ErrPortRangeNotContained)
		}

		staged = append(staged, stagedPort{
			operating: opPort,
			binding:   annotations.PortBinding{Port: phyPort, Range: rng},
		})
	}

	return staged, nil
}
