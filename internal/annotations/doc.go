// Package annotations holds the two data shapes that flow through a
// linking run: the user-supplied annotation records (which block is
// physically realized in which mode, which operating block pairs with
// which physical block) and the Store the linker fills in.
//
// The Store is the run's only mutable state. It grows monotonically —
// bindings are added, never removed or overwritten — and is handed
// read-only to downstream consumers (circuit-model and routing linkers)
// once the run completes. Absence of a binding is a first-class result:
// every lookup returns a comma-ok bool, never a sentinel handle.
package annotations
