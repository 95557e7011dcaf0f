package archfile

import "github.com/hashicorp/hcl/v2"

// blockSchema is a `block` block: one composite block type, either a
// top-level root or a child of a mode.
type blockSchema struct {
	Name  string        `hcl:"name,label"`
	Ports []*portSchema `hcl:"port,block"`
	Modes []*modeSchema `hcl:"mode,block"`
}

// modeSchema is a `mode` block: one implementation variant grouping child
// blocks.
type modeSchema struct {
	Name   string         `hcl:"name,label"`
	Blocks []*blockSchema `hcl:"block,block"`
}

// portSchema is a `port` block. Width is kept as an expression so users
// can write arithmetic; it must evaluate to a number.
type portSchema struct {
	Name  string         `hcl:"name,label"`
	Width hcl.Expression `hcl:"width"`
}

// portMapSchema is a `port` block inside `annotate`: an explicit mapping
// from one operating port to a physical port name and optional range.
type portMapSchema struct {
	Operating string         `hcl:"operating,label"`
	Physical  string         `hcl:"physical"`
	Width     hcl.Expression `hcl:"width,optional"`
	LSB       hcl.Expression `hcl:"lsb,optional"`
}

// annotateSchema is an `annotate` block: a physical-mode selection, a
// pairing, or both.
type annotateSchema struct {
	OperatingPath  []string         `hcl:"operating_path,optional"`
	OperatingModes []string         `hcl:"operating_modes,optional"`
	PhysicalPath   []string         `hcl:"physical_path,optional"`
	PhysicalModes  []string         `hcl:"physical_modes,optional"`
	PhysicalMode   string           `hcl:"physical_mode,optional"`
	Ports          []*portMapSchema `hcl:"port,block"`
}

// fileRoot decodes the top level of a device file.
type fileRoot struct {
	Blocks    []*blockSchema    `hcl:"block,block"`
	Annotates []*annotateSchema `hcl:"annotate,block"`
	Remain    hcl.Body          `hcl:",remain"`
}
