package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructions_SourceBeforeStep(t *testing.T) {
	bc := G().
		Step("V").
		Source("withSack", Long(1)).
		Step("has", "name", "marko").
		Bytecode()

	ops := []string{}
	for _, inst := range bc.Instructions() {
		ops = append(ops, inst.Operator)
	}
	assert.Equal(t, []string{"withSack", "V", "has"}, ops)
}

func TestNewInstruction_LiftsArguments(t *testing.T) {
	inst := NewInstruction("has", "age", Gt(int32(30)))

	assert.Equal(t, "has", inst.Operator)
	require.Len(t, inst.Arguments, 2)
	assert.Equal(t, String("age"), inst.Arguments[0])
	assert.Equal(t, P{Name: "gt", Value: Int(30)}, inst.Arguments[1])
}

func TestIsEmpty(t *testing.T) {
	var nilBytecode *Bytecode
	assert.True(t, nilBytecode.IsEmpty())
	assert.Nil(t, nilBytecode.Instructions())
	assert.True(t, (&Bytecode{}).IsEmpty())
	assert.False(t, G().Step("V").Bytecode().IsEmpty())
}

func TestTraversal_NestedAnonymous(t *testing.T) {
	inner := Anon().Step("out", "knows")
	bc := G().Step("V").Step("where", inner).Bytecode()

	require.Len(t, bc.Step, 2)
	arg := bc.Step[1].Arguments[0]
	nested, ok := arg.(*Traversal)
	require.True(t, ok)
	assert.Equal(t, "out", nested.Bytecode().Step[0].Operator)
}
