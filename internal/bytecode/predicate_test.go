package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonPredicates(t *testing.T) {
	assert.Equal(t, P{Name: "gt", Value: Int(5)}, Gt(int32(5)))
	assert.Equal(t, P{Name: "eq", Value: String("marko")}, Eq("marko"))
	assert.Equal(t, P{Name: "between", Value: List{Int(1), Int(10)}}, Between(1, 10))
	assert.Equal(t, P{Name: "gt", Value: Int(5)}, Gt(5))
	assert.Equal(t, P{Name: "between", Value: List{Long(1), Long(10)}}, Between(int64(1), int64(10)))
	assert.Equal(t, P{Name: "within", Value: List{String("a"), String("b")}}, Within("a", "b"))
	assert.Equal(t, P{Name: "without", Value: List{}}, Without())
}

func TestTextPredicates(t *testing.T) {
	assert.Equal(t, TextP{Name: "containing", Value: String("ark")}, Containing("ark"))
	assert.Equal(t, TextP{Name: "notStartingWith", Value: String("m")}, NotStartingWith("m"))
}

func TestConnectiveFlattening(t *testing.T) {
	a, b, c := Gt(int32(1)), Lt(int32(9)), Neq(int32(5))

	and := And(And(a, b), c)
	require.Len(t, and.Predicates, 3)
	assert.Equal(t, ConnectiveAnd, and.Op)

	// Different connectives nest instead of flattening
	mixed := And(a, Or(b, c))
	require.Len(t, mixed.Predicates, 2)
	inner, ok := mixed.Predicates[1].(ConnectiveP)
	require.True(t, ok)
	assert.Equal(t, ConnectiveOr, inner.Op)
}

func TestConnectiveString(t *testing.T) {
	assert.Equal(t, "and", ConnectiveAnd.String())
	assert.Equal(t, "or", ConnectiveOr.String())
}
