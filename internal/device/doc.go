// Package device models the composite block hierarchy of an FPGA
// architecture as an owned arena. Blocks, modes and ports live in flat
// slices inside a Hierarchy and reference each other through integer
// handles (BlockID, ModeID, PortID) instead of pointers.
//
// A Hierarchy is populated once through the builder methods (AddRoot,
// AddMode, AddChild, AddPort) by whatever produces the architecture —
// the production parser, the archfile harness loader, or a test — and
// is treated as read-only for the rest of a linking run. The linker
// packages never mutate it; all linking results land in a separate
// annotations.Store keyed by the handles defined here.
package device
