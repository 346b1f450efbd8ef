package bytecode

// Traversal is a fluent builder over a Bytecode. As a Value it stands for its
// bytecode (an anonymous sub-traversal).
type Traversal struct {
	bytecode *Bytecode
}

// G starts a traversal from the graph traversal source.
func G() *Traversal {
	return &Traversal{bytecode: &Bytecode{}}
}

// Anon starts an anonymous traversal, used for nested sub-queries.
func Anon() *Traversal {
	return &Traversal{bytecode: &Bytecode{}}
}

// Source appends a source instruction (withSack, withStrategies, ...).
func (t *Traversal) Source(op string, args ...any) *Traversal {
	t.bytecode.AddSource(op, args...)
	return t
}

// Step appends a step instruction.
func (t *Traversal) Step(op string, args ...any) *Traversal {
	t.bytecode.AddStep(op, args...)
	return t
}

// Bytecode returns the traversal's bytecode.
func (t *Traversal) Bytecode() *Bytecode {
	if t == nil {
		return nil
	}
	return t.bytecode
}
