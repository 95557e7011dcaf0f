// Package linker binds the operating and physical views of a device
// hierarchy together. It runs four phases in a fixed order over an
// immutable device.Hierarchy and a list of annotation records:
//
//  1. explicit physical-mode annotation (user-selected modes),
//  2. implicit physical-mode inference (single-mode defaults, ambiguity
//     detection),
//  3. a consistency check of the single-physical-chain invariant,
//  4. operating↔physical block and port pairing.
//
// Results accumulate in an annotations.Store owned by the Linker. The
// consistency check is advisory: its error count is reported in the
// Result but does not stop pairing from running; the caller decides
// whether to trust the store when the check fails.
package linker
