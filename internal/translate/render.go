package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/bytescript/internal/bytecode"
	"github.com/roach88/bytescript/internal/escape"
)

// Fully qualified constructor targets used in rendered literals.
const (
	detachedVertex         = "org.apache.tinkerpop.gremlin.structure.util.detached.DetachedVertex"
	detachedEdge           = "org.apache.tinkerpop.gremlin.structure.util.detached.DetachedEdge"
	detachedVertexProperty = "org.apache.tinkerpop.gremlin.structure.util.detached.DetachedVertexProperty"
	mapConfiguration       = "org.apache.commons.configuration.MapConfiguration"
	emptyProperties        = "Collections.emptyMap()"
)

// Render returns the literal text for v.
//
// Errors are a *MalformedInstructionError from nested bytecode or an
// *EmptyConnectiveError from an and/or predicate with no members. Values
// of unknown kinds render through fmt.Sprint rather than failing.
func Render(v bytecode.Value) (string, error) {
	switch val := v.(type) {
	case nil, bytecode.Null:
		return "null", nil
	case bytecode.Binding:
		return val.Name, nil
	case *bytecode.Bytecode:
		if val == nil {
			return "null", nil
		}
		return Assemble(val, RootAnonymous)
	case *bytecode.Traversal:
		if val == nil {
			return "null", nil
		}
		return Render(val.Bytecode())
	case bytecode.String:
		return renderString(string(val)), nil
	case bytecode.Set:
		return renderSet(val)
	case bytecode.List:
		return renderList(val)
	case bytecode.Map:
		return renderMap(val)
	case bytecode.Long:
		return strconv.FormatInt(int64(val), 10) + "L", nil
	case bytecode.Double:
		return formatDouble(float64(val)) + "d", nil
	case bytecode.Float:
		return formatFloat(float32(val)) + "f", nil
	case bytecode.Int:
		return "(int) " + strconv.FormatInt(int64(val), 10), nil
	case bytecode.Bool:
		return strconv.FormatBool(bool(val)), nil
	case bytecode.Class:
		return string(val), nil
	case bytecode.Timestamp:
		return fmt.Sprintf("new java.sql.Timestamp(%d)", val.UnixMilli()), nil
	case bytecode.Date:
		return fmt.Sprintf("new java.util.Date(%d)", val.UnixMilli()), nil
	case bytecode.UUID:
		return "java.util.UUID.fromString('" + val.String() + "')", nil
	case bytecode.Predicate:
		return renderPredicate(val)
	case bytecode.Enum:
		return val.Type + "." + val.Name, nil
	case bytecode.Vertex:
		return renderVertex(val)
	case bytecode.Edge:
		return renderEdge(val)
	case bytecode.VertexProperty:
		return renderVertexProperty(val)
	case bytecode.Lambda:
		return renderLambda(val), nil
	case bytecode.Strategy:
		return renderStrategy(val)
	case bytecode.Opaque:
		if val.V == nil {
			return "null", nil
		}
		return fmt.Sprint(val.V), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// renderString quotes s, switching to triple quotes when s holds a double
// quote. Every $ is escaped afterwards so Groovy never interpolates.
func renderString(s string) string {
	escaped := escape.Encode(s)

	var quoted string
	if strings.Contains(s, `"`) {
		quoted = `"""` + escaped + `"""`
	} else {
		quoted = `"` + escaped + `"`
	}

	return strings.ReplaceAll(quoted, "$", `\$`)
}

// renderList renders members as [a, b].
func renderList(l bytecode.List) (string, error) {
	parts, err := renderAll(l)
	if err != nil {
		return "", err
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// renderSet renders members as [a, b] as Set. Members that render to the same
// text appear once, at their first position.
func renderSet(s bytecode.Set) (string, error) {
	parts, err := renderAll(s)
	if err != nil {
		return "", err
	}

	seen := make(map[string]struct{}, len(parts))
	unique := parts[:0]
	for _, p := range parts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}

	return "[" + strings.Join(unique, ", ") + "] as Set", nil
}

// renderMap renders entries as [(k):(v),(k2):(v2)] in insertion order.
// Groovy map literals cannot carry arbitrary key types, hence the pair list.
func renderMap(m bytecode.Map) (string, error) {
	var b strings.Builder
	b.WriteByte('[')

	for i, e := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := Render(e.Key)
		if err != nil {
			return "", fmt.Errorf("map key %d: %w", i, err)
		}
		val, err := Render(e.Value)
		if err != nil {
			return "", fmt.Errorf("map value %d: %w", i, err)
		}
		b.WriteByte('(')
		b.WriteString(key)
		b.WriteString("):(")
		b.WriteString(val)
		b.WriteByte(')')
	}

	b.WriteByte(']')
	return b.String(), nil
}

func renderAll(values []bytecode.Value) ([]string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		s, err := Render(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		parts[i] = s
	}
	return parts, nil
}

func renderLambda(l bytecode.Lambda) string {
	script := strings.TrimSpace(l.Script)
	if strings.HasPrefix(script, "{") {
		return script
	}
	return "{" + script + "}"
}

func renderStrategy(s bytecode.Strategy) (string, error) {
	if len(s.Configuration) == 0 {
		return s.Class + ".instance()", nil
	}

	config, err := renderMap(s.Configuration)
	if err != nil {
		return "", fmt.Errorf("strategy %s: %w", s.Class, err)
	}
	return s.Class + ".create(new " + mapConfiguration + "(" + config + "))", nil
}

// renderVertex renders a detached vertex. Properties are never inlined.
func renderVertex(v bytecode.Vertex) (string, error) {
	id, err := Render(v.ID)
	if err != nil {
		return "", err
	}
	return "new " + detachedVertex + "(" + id + "," + renderString(v.Label) + ", " + emptyProperties + ")", nil
}

func renderEdge(e bytecode.Edge) (string, error) {
	parts, err := renderAll([]bytecode.Value{e.ID, e.Out.ID, e.In.ID})
	if err != nil {
		return "", err
	}
	id, outID, inID := parts[0], parts[1], parts[2]

	return "new " + detachedEdge + "(" + strings.Join([]string{
		id,
		renderString(e.Label),
		emptyProperties,
		outID,
		renderString(e.Out.Label),
		inID,
		renderString(e.In.Label),
	}, ",") + ")", nil
}

func renderVertexProperty(p bytecode.VertexProperty) (string, error) {
	parts, err := renderAll([]bytecode.Value{p.ID, p.Value})
	if err != nil {
		return "", err
	}

	element := "null"
	if p.Element != nil {
		element, err = renderVertex(*p.Element)
		if err != nil {
			return "", err
		}
	}

	return "new " + detachedVertexProperty + "(" + strings.Join([]string{
		parts[0],
		renderString(p.Label),
		parts[1],
		emptyProperties,
		element,
	}, ",") + ")", nil
}
