package bytecode

// Predicate is a sealed interface over comparison, text and connective
// predicates. Every Predicate is also a Value.
type Predicate interface {
	Value
	predicate()
}

// P is a comparison predicate over a single operand (P.gt(5)).
type P struct {
	Name  string
	Value Value
}

func (P) value()     {}
func (P) predicate() {}

// TextP is a text-match predicate (TextP.containing("ma")).
type TextP struct {
	Name  string
	Value Value
}

func (TextP) value()     {}
func (TextP) predicate() {}

// Connective selects how a ConnectiveP combines its predicates.
type Connective int

const (
	ConnectiveAnd Connective = iota
	ConnectiveOr
)

// String returns the builder method name for the connective.
func (c Connective) String() string {
	if c == ConnectiveOr {
		return "or"
	}
	return "and"
}

// ConnectiveP joins predicates with AND or OR.
type ConnectiveP struct {
	Op         Connective
	Predicates []Predicate
}

func (ConnectiveP) value()     {}
func (ConnectiveP) predicate() {}

// And combines predicates with AND. Nested AND predicates are flattened.
func And(ps ...Predicate) ConnectiveP {
	return connective(ConnectiveAnd, ps)
}

// Or combines predicates with OR. Nested OR predicates are flattened.
func Or(ps ...Predicate) ConnectiveP {
	return connective(ConnectiveOr, ps)
}

func connective(op Connective, ps []Predicate) ConnectiveP {
	flat := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if c, ok := p.(ConnectiveP); ok && c.Op == op {
			flat = append(flat, c.Predicates...)
			continue
		}
		flat = append(flat, p)
	}
	return ConnectiveP{Op: op, Predicates: flat}
}

func compare(name string, v any) P { return P{Name: name, Value: Of(v)} }

// Comparison predicates.

func Eq(v any) P  { return compare("eq", v) }
func Neq(v any) P { return compare("neq", v) }
func Lt(v any) P  { return compare("lt", v) }
func Lte(v any) P { return compare("lte", v) }
func Gt(v any) P  { return compare("gt", v) }
func Gte(v any) P { return compare("gte", v) }

func Inside(lo, hi any) P {
	return P{Name: "inside", Value: List{Of(lo), Of(hi)}}
}

func Outside(lo, hi any) P {
	return P{Name: "outside", Value: List{Of(lo), Of(hi)}}
}

func Between(lo, hi any) P {
	return P{Name: "between", Value: List{Of(lo), Of(hi)}}
}

// Within matches any of vals. The operand is always a List.
func Within(vals ...any) P { return P{Name: "within", Value: listOf(vals)} }

// Without matches none of vals. The operand is always a List.
func Without(vals ...any) P { return P{Name: "without", Value: listOf(vals)} }

func text(name, s string) TextP { return TextP{Name: name, Value: String(s)} }

// Text predicates.

func Containing(s string) TextP      { return text("containing", s) }
func NotContaining(s string) TextP   { return text("notContaining", s) }
func StartingWith(s string) TextP    { return text("startingWith", s) }
func NotStartingWith(s string) TextP { return text("notStartingWith", s) }
func EndingWith(s string) TextP      { return text("endingWith", s) }
func NotEndingWith(s string) TextP   { return text("notEndingWith", s) }

func listOf(vals []any) List {
	l := make(List, len(vals))
	for i, v := range vals {
		l[i] = Of(v)
	}
	return l
}
