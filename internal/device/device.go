package device

// BlockID identifies a block within one Hierarchy.
type BlockID int

// ModeID identifies a mode within one Hierarchy.
type ModeID int

// PortID identifies a port within one Hierarchy.
type PortID int

// Sentinel handles for "no such element". Lookups that can miss return a
// comma-ok bool as well; the sentinels exist for struct fields that are
// legitimately unset, such as the parent mode of a root block.
const (
	NoBlock BlockID = -1
	NoMode  ModeID  = -1
	NoPort  PortID  = -1
)

// block is one composite block type instance. Its name is unique among
// siblings (the children of one mode), not globally.
type block struct {
	name   string
	parent ModeID // NoMode for roots
	modes  []ModeID
	ports  []PortID
}

// mode is one implementation variant of a block, grouping its child blocks.
type mode struct {
	name     string
	owner    BlockID
	children []BlockID
}

// port is a named pin group with a fixed bit width.
type port struct {
	name  string
	width int
	owner BlockID
}

// Hierarchy is the arena owning every block, mode and port of one device
// description, plus the list of top-level roots (one per device block type).
type Hierarchy struct {
	blocks []block
	modes  []mode
	ports  []port
	roots  []BlockID
}

// New returns an empty hierarchy ready for building.
func New() *Hierarchy {
	return &Hierarchy{}
}

// AddRoot appends a new top-level block and returns its handle.
func (h *Hierarchy) AddRoot(name string) BlockID {
	id := BlockID(len(h.blocks))
	h.blocks = append(h.blocks, block{name: name, parent: NoMode})
	h.roots = append(h.roots, id)
	return id
}

// AddMode appends a new mode to an existing block and returns its handle.
func (h *Hierarchy) AddMode(b BlockID, name string) ModeID {
	id := ModeID(len(h.modes))
	h.modes = append(h.modes, mode{name: name, owner: b})
	h.blocks[b].modes = append(h.blocks[b].modes, id)
	return id
}

// AddChild appends a new block under an existing mode and returns its handle.
func (h *Hierarchy) AddChild(m ModeID, name string) BlockID {
	id := BlockID(len(h.blocks))
	h.blocks = append(h.blocks, block{name: name, parent: m})
	h.modes[m].children = append(h.modes[m].children, id)
	return id
}

// AddPort appends a new port to an existing block and returns its handle.
func (h *Hierarchy) AddPort(b BlockID, name string, width int) PortID {
	id := PortID(len(h.ports))
	h.ports = append(h.ports, port{name: name, width: width, owner: b})
	h.blocks[b].ports = append(h.blocks[b].ports, id)
	return id
}

// Roots returns the top-level block handles in insertion order.
func (h *Hierarchy) Roots() []BlockID {
	return h.roots
}

// NumBlocks returns the number of blocks in the arena. Block handles are
// dense: every BlockID in [0, NumBlocks) is valid.
func (h *Hierarchy) NumBlocks() int {
	return len(h.blocks)
}

// BlockName returns the name of a block.
func (h *Hierarchy) BlockName(b BlockID) string {
	return h.blocks[b].name
}

// ParentMode returns the mode owning a block, or NoMode for roots.
func (h *Hierarchy) ParentMode(b BlockID) ModeID {
	return h.blocks[b].parent
}

// IsPrimitive reports whether a block has no modes, i.e. is a leaf that
// maps directly onto a primitive circuit element.
func (h *Hierarchy) IsPrimitive(b BlockID) bool {
	return len(h.blocks[b].modes) == 0
}

// Modes returns the mode handles of a block in declaration order.
func (h *Hierarchy) Modes(b BlockID) []ModeID {
	return h.blocks[b].modes
}

// ModeName returns the name of a mode.
func (h *Hierarchy) ModeName(m ModeID) string {
	return h.modes[m].name
}

// ModeOwner returns the block a mode belongs to.
func (h *Hierarchy) ModeOwner(m ModeID) BlockID {
	return h.modes[m].owner
}

// Children returns the child block handles of a mode in declaration order.
func (h *Hierarchy) Children(m ModeID) []BlockID {
	return h.modes[m].children
}

// Ports returns the port handles of a block in declaration order.
func (h *Hierarchy) Ports(b BlockID) []PortID {
	return h.blocks[b].ports
}

// PortName returns the name of a port.
func (h *Hierarchy) PortName(p PortID) string {
	return h.ports[p].name
}

// PortWidth returns the bit width of a port.
func (h *Hierarchy) PortWidth(p PortID) int {
	return h.ports[p].width
}

// PortOwner returns the block a port belongs to.
func (h *Hierarchy) PortOwner(p PortID) BlockID {
	return h.ports[p].owner
}

// FindMode looks up a mode of a block by name.
func (h *Hierarchy) FindMode(b BlockID, name string) (ModeID, bool) {
	for _, m := range h.blocks[b].modes {
		if h.modes[m].name == name {
			return m, true
		}
	}
	return NoMode, false
}

// FindChild looks up a child block of a mode by name.
func (h *Hierarchy) FindChild(m ModeID, name string) (BlockID, bool) {
	for _, c := range h.modes[m].children {
		if h.blocks[c].name == name {
			return c, true
		}
	}
	return NoBlock, false
}

// FindPort looks up a port of a block by name.
func (h *Hierarchy) FindPort(b BlockID, name string) (PortID, bool) {
	for _, p := range h.blocks[b].ports {
		if h.ports[p].name == name {
			return p, true
		}
	}
	return NoPort, false
}
