package bytecode

// Vertex is a detached graph vertex. Properties are never carried.
type Vertex struct {
	ID    Value
	Label string
}

func (Vertex) value() {}

// Edge is a detached graph edge between two vertices.
type Edge struct {
	ID    Value
	Label string
	Out   Vertex
	In    Vertex
}

func (Edge) value() {}

// VertexProperty is a detached vertex property. Element is the owning vertex
// and may be nil when unknown.
type VertexProperty struct {
	ID      Value
	Label   string
	Value   Value
	Element *Vertex
}

func (VertexProperty) value() {}
