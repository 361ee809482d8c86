// Package ir provides the tree-shaped intermediate representation for bfc.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import ir; ir imports nothing internal. This keeps the
// IR the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Atom is a sealed interface; the variant set is closed
//   - Offsets are relative to the pointer at the moment the atom runs
//   - A Loop always tests the cell under the physical pointer (offset 0)
//   - The tape is TapeSize cells and wraps; cell values wrap mod 256
package ir
