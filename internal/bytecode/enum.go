package bytecode

// Enum is an enumerated constant rendered as Type.Name.
type Enum struct {
	Type string
	Name string
}

func (Enum) value() {}

// Enclosing type names used by the traversal language.
const (
	TypeBarrier     = "SackFunctions.Barrier"
	TypeCardinality = "VertexProperty.Cardinality"
	TypePick        = "TraversalOptionParent.Pick"
	TypeT           = "T"
	TypeOrder       = "Order"
	TypeScope       = "Scope"
	TypeColumn      = "Column"
	TypeDirection   = "Direction"
	TypePop         = "Pop"
	TypeOperator    = "Operator"
)

// Barrier returns a sack barrier constant (normSack).
func Barrier(name string) Enum { return Enum{Type: TypeBarrier, Name: name} }

// Cardinality returns a vertex property cardinality (single, list, set).
func Cardinality(name string) Enum { return Enum{Type: TypeCardinality, Name: name} }

// Pick returns a branch pick token (any, none).
func Pick(name string) Enum { return Enum{Type: TypePick, Name: name} }

// T returns a structure token (id, label, key, value).
func T(name string) Enum { return Enum{Type: TypeT, Name: name} }

// Order returns a sort order (asc, desc, shuffle).
func Order(name string) Enum { return Enum{Type: TypeOrder, Name: name} }

// Scope returns a scope (local, global).
func Scope(name string) Enum { return Enum{Type: TypeScope, Name: name} }

// Column returns a column selector (keys, values).
func Column(name string) Enum { return Enum{Type: TypeColumn, Name: name} }

// Direction returns an edge direction (OUT, IN, BOTH).
func Direction(name string) Enum { return Enum{Type: TypeDirection, Name: name} }

// Pop returns a path pop mode (first, last, all, mixed).
func Pop(name string) Enum { return Enum{Type: TypePop, Name: name} }

// Operator returns a sack/reducing operator (sum, minus, mult, ...).
func Operator(name string) Enum { return Enum{Type: TypeOperator, Name: name} }
