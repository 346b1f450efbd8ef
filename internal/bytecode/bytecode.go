package bytecode

// Instruction is one operator invocation with its ordered arguments.
type Instruction struct {
	Operator  string
	Arguments []Value
}

// NewInstruction builds an Instruction, lifting args through Of.
func NewInstruction(op string, args ...any) Instruction {
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = Of(a)
	}
	return Instruction{Operator: op, Arguments: values}
}

// Bytecode is one traversal: source instructions followed by step instructions.
type Bytecode struct {
	Source []Instruction
	Step   []Instruction
}

// AddSource appends a source instruction.
func (b *Bytecode) AddSource(op string, args ...any) {
	b.Source = append(b.Source, NewInstruction(op, args...))
}

// AddStep appends a step instruction.
func (b *Bytecode) AddStep(op string, args ...any) {
	b.Step = append(b.Step, NewInstruction(op, args...))
}

// Instructions returns source instructions followed by step instructions.
func (b *Bytecode) Instructions() []Instruction {
	if b == nil {
		return nil
	}
	all := make([]Instruction, 0, len(b.Source)+len(b.Step))
	all = append(all, b.Source...)
	return append(all, b.Step...)
}

// IsEmpty reports whether b holds no instructions.
func (b *Bytecode) IsEmpty() bool {
	return b == nil || len(b.Source)+len(b.Step) == 0
}
