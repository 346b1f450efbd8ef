package translate

import (
	"errors"
	"fmt"
)

// MalformedInstructionError reports an instruction without an operator name.
// This is a contract violation by whoever built the bytecode; rendering stops
// instead of emitting a broken script.
type MalformedInstructionError struct {
	// Index is the instruction's position in its bytecode (source first).
	Index int

	// Root is the marker of the traversal holding the instruction.
	Root string
}

// Error implements the error interface.
func (e *MalformedInstructionError) Error() string {
	return fmt.Sprintf("malformed instruction %d in %s traversal: empty operator", e.Index, e.Root)
}

// IsMalformedInstruction returns true if err is, or wraps, a
// *MalformedInstructionError.
func IsMalformedInstruction(err error) bool {
	var me *MalformedInstructionError
	return errors.As(err, &me)
}

// EmptyConnectiveError reports an and/or predicate with no members, which
// has no script form.
type EmptyConnectiveError struct {
	Op string
}

// Error implements the error interface.
func (e *EmptyConnectiveError) Error() string {
	return fmt.Sprintf("empty %s predicate: needs at least one member", e.Op)
}
