package translate

import (
	"fmt"
	"strings"

	"github.com/roach88/bytescript/internal/bytecode"
)

// Root markers.
const (
	// RootSource starts a top-level traversal.
	RootSource = "g"

	// RootAnonymous starts a nested sub-traversal.
	RootAnonymous = "__"
)

// withSack is overloaded; its lambda arguments need explicit casts.
const sackInitializer = "withSack"

// Functional interface casts used for withSack lambdas.
const (
	castSupplier       = "java.util.function.Supplier"
	castUnaryOperator  = "java.util.function.UnaryOperator"
	castBinaryOperator = "java.util.function.BinaryOperator"
)

// Options configures a Translator.
type Options struct {
	// Root is the marker for top-level traversals. Defaults to RootSource.
	Root string
}

// Translator renders values and bytecode with a configured root marker.
// The zero value is ready to use.
type Translator struct {
	opts Options
}

// New creates a Translator.
func New(opts Options) *Translator {
	return &Translator{opts: opts}
}

// Root returns the marker used for top-level traversals.
func (t *Translator) Root() string {
	if t == nil || t.opts.Root == "" {
		return RootSource
	}
	return t.opts.Root
}

// Translate renders v. Bytecode and traversals become a full script starting
// at the translator's root; any other value renders as a literal.
func (t *Translator) Translate(v bytecode.Value) (string, error) {
	switch val := v.(type) {
	case *bytecode.Bytecode:
		return Assemble(val, t.Root())
	case *bytecode.Traversal:
		return Assemble(val.Bytecode(), t.Root())
	default:
		return Render(v)
	}
}

// QueryString renders v with the default "g" root.
func QueryString(v bytecode.Value) (string, error) {
	return (&Translator{}).Translate(v)
}

// Assemble produces root followed by one .operator(args) fragment per
// instruction, source instructions first.
//
// Returns *MalformedInstructionError if any instruction, including one nested
// inside an argument, has an empty operator.
func Assemble(bc *bytecode.Bytecode, root string) (string, error) {
	var b strings.Builder
	b.WriteString(root)

	for i, inst := range bc.Instructions() {
		if inst.Operator == "" {
			return "", &MalformedInstructionError{Index: i, Root: root}
		}

		b.WriteByte('.')
		b.WriteString(inst.Operator)
		b.WriteByte('(')

		var (
			args string
			err  error
		)
		if isSackInitializer(inst) {
			args, err = renderSackArguments(inst.Arguments)
		} else {
			args, err = renderArguments(inst.Arguments)
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", inst.Operator, err)
		}

		b.WriteString(args)
		b.WriteByte(')')
	}

	return b.String(), nil
}

// renderArguments renders args separated by a single comma.
func renderArguments(args []bytecode.Value) (string, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		s, err := Render(arg)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}

func isSackInitializer(inst bytecode.Instruction) bool {
	if inst.Operator != sackInitializer || len(inst.Arguments) != 2 {
		return false
	}
	_, ok := inst.Arguments[1].(bytecode.Lambda)
	return ok
}

// renderSackArguments renders withSack(initial, operator) with explicit casts:
// a lambda initial value is cast to Supplier, and the operator lambda to
// UnaryOperator or BinaryOperator by its declared parameter count.
func renderSackArguments(args []bytecode.Value) (string, error) {
	initial, err := Render(args[0])
	if err != nil {
		return "", fmt.Errorf("argument 0: %w", err)
	}
	if _, ok := args[0].(bytecode.Lambda); ok {
		initial = "(" + castSupplier + ") " + initial
	}

	lambda := args[1].(bytecode.Lambda)
	operator, err := Render(lambda)
	if err != nil {
		return "", fmt.Errorf("argument 1: %w", err)
	}

	cast := castBinaryOperator
	if lambda.Arguments == 1 {
		cast = castUnaryOperator
	}

	return fmt.Sprintf("%s, (%s) %s", initial, cast, operator), nil
}
