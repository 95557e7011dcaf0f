package annotations

import "github.com/vk/fablink/internal/device"

// PortRef is an explicit expectation for the physical counterpart of one
// operating port: the physical port name, the expected width and the low
// bit offset within the physical port. A zero Width means "same width as
// the operating port".
type PortRef struct {
	Name  string
	Width int
	LSB   int
}

// Record is one user annotation, already parsed from the architecture
// description by an external collaborator (or by the archfile harness).
// A record names an operating block, a physical block, or both; the two
// roles are carried as full path specs. A record with a non-empty
// PhysicalMode selects the physically-realized mode of whichever block it
// names. A record naming both sides additionally pairs the two blocks and
// their ports.
type Record struct {
	Operating device.PathSpec // zero value when the record names no operating block
	Physical  device.PathSpec // zero value when the record names no physical block

	// PhysicalMode is the name of the mode selected as physically
	// realized, or empty when the record is pairing-only.
	PhysicalMode string

	// Ports maps operating port names to explicit physical expectations.
	// Operating ports not listed here default to same-name, same-width.
	Ports map[string]PortRef
}

// HasOperating reports whether the record names an operating block.
func (r Record) HasOperating() bool {
	return len(r.Operating.Blocks) > 0
}

// HasPhysical reports whether the record names a physical block.
func (r Record) HasPhysical() bool {
	return len(r.Physical.Blocks) > 0
}

// IsModeAnnotation reports whether the record selects a physical mode.
func (r Record) IsModeAnnotation() bool {
	return r.PhysicalMode != ""
}

// IsPairing reports whether the record pairs an operating block with a
// physical block.
func (r Record) IsPairing() bool {
	return r.HasOperating() && r.HasPhysical()
}

// ModeTarget returns the path spec of the block whose physical mode the
// record selects. When a record names both sides the physical side wins,
// matching how annotations have historically been interpreted.
func (r Record) ModeTarget() device.PathSpec {
	if r.HasPhysical() {
		return r.Physical
	}
	return r.Operating
}
