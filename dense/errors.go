// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors. All methods must
// return these sentinels and tests must check them via errors.Is. No method
// panics on user-triggered error conditions.

package dense

import "errors"

// Every message is prefixed with "dense: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the method boundary — callers still match with errors.Is.
var (
	// ErrBadCapacity is returned by constructors when the requested
	// capacity is not positive. Capacity is validated before allocation.
	ErrBadCapacity = errors.New("dense: capacity must be > 0")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	// Every indexed operation returns this rather than clamping or
	// truncating the index.
	ErrOutOfRange = errors.New("dense: vertex index out of range")

	// ErrBadWeight is returned when a NaN weight is passed to
	// WeightedGraph.AddEdge; NaN is the reserved "no edge" marker and can
	// never be stored as a weight.
	ErrBadWeight = errors.New("dense: NaN is not a valid edge weight")

	// ErrLoopExport marks a self-loop encountered while exporting to a
	// gonum simple graph, which rejects self edges. Loops are storable
	// here but cannot cross that boundary.
	ErrLoopExport = errors.New("dense: self-loop cannot be exported to a simple graph")
)
