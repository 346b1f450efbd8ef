package bytecode

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Value is a sealed interface over every argument kind the translator knows.
type Value interface {
	value() // Sealed - only types in this package implement it
}

// Null is the null literal.
type Null struct{}

func (Null) value() {}

// Bool is a boolean.
type Bool bool

func (Bool) value() {}

// String is a string literal.
type String string

func (String) value() {}

// Int is a 32-bit integer.
type Int int32

func (Int) value() {}

// Long is a 64-bit integer.
type Long int64

func (Long) value() {}

// Float is a single-precision float.
type Float float32

func (Float) value() {}

// Double is a double-precision float.
type Double float64

func (Double) value() {}

// List is an ordered sequence of values.
type List []Value

func (List) value() {}

// Set is a collection of distinct values. Members keep the order they were
// added in so that rendering is deterministic.
type Set []Value

func (Set) value() {}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is an ordered mapping. Entries render in insertion order, never sorted.
type Map []Entry

func (Map) value() {}

// Put returns a copy of m with key set to val; m itself is left unchanged.
// An existing key keeps its position.
func (m Map) Put(key, val Value) Map {
	out := make(Map, len(m), len(m)+1)
	copy(out, m)
	for i := range out {
		if reflect.DeepEqual(out[i].Key, key) {
			out[i].Value = val
			return out
		}
	}
	return append(out, Entry{Key: key, Value: val})
}

// Get returns the value stored under key.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if reflect.DeepEqual(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Binding is a named placeholder. It renders as its name; Value is carried for
// the caller's benefit only.
type Binding struct {
	Name  string
	Value Value
}

func (Binding) value() {}

// Class is a type reference holding a canonical type name
// (e.g. "org.apache.tinkerpop.gremlin.structure.Vertex").
type Class string

func (Class) value() {}

// Date is a point in time rendered as a java.util.Date.
type Date struct {
	time.Time
}

func (Date) value() {}

// Timestamp is a point in time rendered as a java.sql.Timestamp.
type Timestamp struct {
	time.Time
}

func (Timestamp) value() {}

// UUID is a universally unique identifier.
type UUID uuid.UUID

func (UUID) value() {}

// String returns the canonical UUID form.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// Lambda is a closure given by its script text.
type Lambda struct {
	Script string

	// Arguments is the number of parameters the closure declares.
	Arguments int
}

func (Lambda) value() {}

// Strategy is a traversal strategy. Class is the canonical strategy type name
// and Configuration its parameters; an empty Configuration means the strategy
// is used through its singleton instance.
type Strategy struct {
	Class         string
	Configuration Map
}

func (Strategy) value() {}

// Opaque wraps any Go value the model has no dedicated kind for. It renders
// through the value's default textual form.
type Opaque struct {
	V any
}

func (Opaque) value() {}

func (*Bytecode) value()  {}
func (*Traversal) value() {}

// Compile-time checks.
var (
	_ Value = Null{}
	_ Value = List(nil)
	_ Value = Map(nil)
	_ Value = (*Bytecode)(nil)
	_ Value = (*Traversal)(nil)
)
