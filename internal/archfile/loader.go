package archfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/fablink/internal/annotations"
	"github.com/vk/fablink/internal/ctxlog"
	"github.com/vk/fablink/internal/device"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader parses HCL device files into a hierarchy and annotation records.
type Loader struct{}

// NewLoader creates a new device file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the device file at path.
func (l *Loader) Load(ctx context.Context, path string) (*device.Hierarchy, []annotations.Record, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse device file %s: %w", path, diags)
	}
	return l.build(ctx, hclFile)
}

// Parse decodes a device file from memory. The filename is only used in
// diagnostics.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*device.Hierarchy, []annotations.Record, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse device file %s: %w", filename, diags)
	}
	return l.build(ctx, hclFile)
}

// build translates a parsed file into the arena hierarchy and the flat
// record list.
func (l *Loader) build(ctx context.Context, hclFile *hcl.File) (*device.Hierarchy, []annotations.Record, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode device file: %w", diags)
	}

	hier := device.New()
	for _, bs := range root.Blocks {
		rootID := hier.AddRoot(bs.Name)
		if err := l.populateBlock(hier, rootID, bs); err != nil {
			return nil, nil, err
		}
	}

	records := make([]annotations.Record, 0, len(root.Annotates))
	for _, as := range root.Annotates {
		rec, err := l.translateAnnotate(as)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}

	logger.Debug("Device file loading complete.",
		"blocks", hier.NumBlocks(), "roots", len(hier.Roots()), "annotations", len(records))
	return hier, records, nil
}

// populateBlock fills in the ports and modes of an already-added block,
// recursing into child blocks.
func (l *Loader) populateBlock(hier *device.Hierarchy, id device.BlockID, bs *blockSchema) error {
	for _, ps := range bs.Ports {
		width, err := intFromExpr(ps.Width, 0)
		if err != nil {
			return fmt.Errorf("invalid width for port %q on block %q: %w", ps.Name, bs.Name, err)
		}
		if width <= 0 {
			return fmt.Errorf("port %q on block %q must have a positive width, got %d", ps.Name, bs.Name, width)
		}
		hier.AddPort(id, ps.Name, width)
	}
	for _, ms := range bs.Modes {
		modeID := hier.AddMode(id, ms.Name)
		for _, child := range ms.Blocks {
			childID := hier.AddChild(modeID, child.Name)
			if err := l.populateBlock(hier, childID, child); err != nil {
				return err
			}
		}
	}
	return nil
}

// translateAnnotate converts one `annotate` block into a record.
func (l *Loader) translateAnnotate(as *annotateSchema) (annotations.Record, error) {
	rec := annotations.Record{
		Operating:    device.PathSpec{Blocks: as.OperatingPath, Modes: as.OperatingModes},
		Physical:     device.PathSpec{Blocks: as.PhysicalPath, Modes: as.PhysicalModes},
		PhysicalMode: as.PhysicalMode,
	}

	if !rec.HasOperating() && !rec.HasPhysical() {
		return rec, fmt.Errorf("annotate block names neither an operating nor a physical path")
	}
	if !rec.IsModeAnnotation() && !rec.IsPairing() {
		return rec, fmt.Errorf("annotate block for %q selects no physical mode and pairs nothing", rec.ModeTarget().Leaf())
	}

	if len(as.Ports) > 0 {
		rec.Ports = make(map[string]annotations.PortRef, len(as.Ports))
		for _, pm := range as.Ports {
			width, err := intFromExpr(pm.Width, 0)
			if err != nil {
				return rec, fmt.Errorf("invalid width in port map for %q: %w", pm.Operating, err)
			}
			lsb, err := intFromExpr(pm.LSB, 0)
			if err != nil {
				return rec, fmt.Errorf("invalid lsb in port map for %q: %w", pm.Operating, err)
			}
			rec.Ports[pm.Operating] = annotations.PortRef{
				Name:  pm.Physical,
				Width: width,
				LSB:   lsb,
			}
		}
	}

	return rec, nil
}

// intFromExpr evaluates a number expression, returning fallback when the
// expression is absent.
func intFromExpr(expr hcl.Expression, fallback int) (int, error) {
	if expr == nil {
		return fallback, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return fallback, nil
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number: %w", err)
	}
	i64, _ := val.AsBigFloat().Int64()
	return int(i64), nil
}
