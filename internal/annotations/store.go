package annotations

import "github.com/vk/fablink/internal/device"

// Range is a contiguous bit range of width Width starting at bit LSB.
type Range struct {
	LSB   int
	Width int
}

// ContainedIn reports whether the range fits inside [0, width).
func (r Range) ContainedIn(width int) bool {
	return r.LSB >= 0 && r.Width >= 0 && r.LSB+r.Width <= width
}

// PortBinding is the physical counterpart of one operating port: the
// physical port handle and the bit range of it the operating port maps to.
type PortBinding struct {
	Port  device.PortID
	Range Range
}

// Store accumulates the results of one linking run. All three maps are
// first-writer-wins: a Bind call for a key that already has a binding is a
// no-op and reports false. The store must be exclusively owned by one
// in-flight run; independent runs need independent stores.
type Store struct {
	modes  map[device.BlockID]device.ModeID
	blocks map[device.BlockID]device.BlockID
	ports  map[device.PortID]PortBinding
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		modes:  make(map[device.BlockID]device.ModeID),
		blocks: make(map[device.BlockID]device.BlockID),
		ports:  make(map[device.PortID]PortBinding),
	}
}

// BindMode records the physical mode of a block. It reports whether the
// binding was added; false means the block already had one and nothing
// changed.
func (s *Store) BindMode(b device.BlockID, m device.ModeID) bool {
	if _, exists := s.modes[b]; exists {
		return false
	}
	s.modes[b] = m
	return true
}

// PhysicalMode returns the physical mode bound to a block, if any.
func (s *Store) PhysicalMode(b device.BlockID) (device.ModeID, bool) {
	m, ok := s.modes[b]
	return m, ok
}

// BindBlock records the physical counterpart of an operating block. It
// reports whether the binding was added.
func (s *Store) BindBlock(operating, physical device.BlockID) bool {
	if _, exists := s.blocks[operating]; exists {
		return false
	}
	s.blocks[operating] = physical
	return true
}

// PhysicalBlock returns the physical block paired with an operating block,
// if any.
func (s *Store) PhysicalBlock(operating device.BlockID) (device.BlockID, bool) {
	b, ok := s.blocks[operating]
	return b, ok
}

// BindPort records the physical counterpart of an operating port. It
// reports whether the binding was added.
func (s *Store) BindPort(operating device.PortID, binding PortBinding) bool {
	if _, exists := s.ports[operating]; exists {
		return false
	}
	s.ports[operating] = binding
	return true
}

// PhysicalPort returns the physical binding of an operating port, if any.
func (s *Store) PhysicalPort(operating device.PortID) (PortBinding, bool) {
	p, ok := s.ports[operating]
	return p, ok
}

// ModeCount returns the number of physical-mode bindings.
func (s *Store) ModeCount() int { return len(s.modes) }

// BlockCount returns the number of operating→physical block pairs.
func (s *Store) BlockCount() int { return len(s.blocks) }

// PortCount returns the number of operating→physical port pairs.
func (s *Store) PortCount() int { return len(s.ports) }

// Snapshot is an exported copy of the store contents, suitable for
// comparison with go-cmp and for debug dumps.
type Snapshot struct {
	Modes  map[device.BlockID]device.ModeID
	Blocks map[device.BlockID]device.BlockID
	Ports  map[device.PortID]PortBinding
}

// Snapshot copies the current contents of the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Modes:  make(map[device.BlockID]device.ModeID, len(s.modes)),
		Blocks: make(map[device.BlockID]device.BlockID, len(s.blocks)),
		Ports:  make(map[device.PortID]PortBinding, len(s.ports)),
	}
	for k, v := range s.modes {
		snap.Modes[k] = v
	}
	for k, v := range s.blocks {
		snap.Blocks[k] = v
	}
	for k, v := range s.ports {
		snap.Ports[k] = v
	}
	return snap
}
