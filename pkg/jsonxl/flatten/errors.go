package flatten

import "fmt"

// StructuralError reports an internal invariant violation during
// flattening. With depth validation in front of Flatten it should be
// unreachable.
type StructuralError struct {
	Column string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("structural error: %s", e.Reason)
	}
	return fmt.Sprintf("structural error at column %q: %s", e.Column, e.Reason)
}

// ReconstructionError reports row data that cannot be rebuilt into a single
// unambiguous tree.
type ReconstructionError struct {
	Column string
	Reason string
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("cannot reconstruct column %q: %s", e.Column, e.Reason)
}
