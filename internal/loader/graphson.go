package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/bytescript/internal/bytecode"
)

// defaultVertexLabel is used for a vertex property's owner when the document
// gives only its id.
const defaultVertexLabel = "vertex"

var errUnsupportedType = errors.New("unsupported type")

// enumTypes maps GraphSON enum type names to their rendered enclosing type.
var enumTypes = map[string]string{
	"g:T":           bytecode.TypeT,
	"g:Order":       bytecode.TypeOrder,
	"g:Scope":       bytecode.TypeScope,
	"g:Column":      bytecode.TypeColumn,
	"g:Direction":   bytecode.TypeDirection,
	"g:Pop":         bytecode.TypePop,
	"g:Operator":    bytecode.TypeOperator,
	"g:Barrier":     bytecode.TypeBarrier,
	"g:Cardinality": bytecode.TypeCardinality,
	"g:Pick":        bytecode.TypePick,
}

// decodeBytecode decodes {"source": [...], "step": [...]}, optionally wrapped
// in a g:Bytecode typed value.
func decodeBytecode(raw any) (*bytecode.Bytecode, error) {
	obj, ok := raw.(*object)
	if !ok {
		return nil, fmt.Errorf("bytecode must be an object, got %s", describe(raw))
	}

	if typ, ok := obj.get("@type"); ok {
		if typ != "g:Bytecode" {
			return nil, fmt.Errorf("expected g:Bytecode, got %v", typ)
		}
		inner, _ := obj.get("@value")
		return decodeBytecode(inner)
	}

	if err := obj.only("source", "step"); err != nil {
		return nil, err
	}

	bc := &bytecode.Bytecode{}
	var err error
	if raw, ok := obj.get("source"); ok {
		if bc.Source, err = decodeInstructions(raw); err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
	}
	if raw, ok := obj.get("step"); ok {
		if bc.Step, err = decodeInstructions(raw); err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
	}
	return bc, nil
}

func decodeInstructions(raw any) ([]bytecode.Instruction, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list of instructions, got %s", describe(raw))
	}

	out := make([]bytecode.Instruction, 0, len(list))
	for i, item := range list {
		inst, err := decodeInstruction(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

func decodeInstruction(raw any) (bytecode.Instruction, error) {
	parts, ok := raw.([]any)
	if !ok || len(parts) == 0 {
		return bytecode.Instruction{}, fmt.Errorf("instruction must be a non-empty list")
	}
	op, ok := parts[0].(string)
	if !ok || op == "" {
		return bytecode.Instruction{}, fmt.Errorf("instruction operator must be a non-empty string")
	}

	args := make([]bytecode.Value, 0, len(parts)-1)
	for i, p := range parts[1:] {
		v, err := decodeValue(p)
		if err != nil {
			return bytecode.Instruction{}, fmt.Errorf("%s argument %d: %w", op, i, err)
		}
		args = append(args, v)
	}
	return bytecode.Instruction{Operator: op, Arguments: args}, nil
}

// decodeValue decodes an untyped or typed GraphSON value.
func decodeValue(raw any) (bytecode.Value, error) {
	switch val := raw.(type) {
	case nil:
		return bytecode.Null{}, nil
	case bool:
		return bytecode.Bool(val), nil
	case string:
		return bytecode.String(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return bytecode.Int(i), nil
			}
			return bytecode.Long(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s", val)
		}
		return bytecode.Double(f), nil
	case float64:
		return bytecode.Double(val), nil
	case []any:
		return decodeList(val)
	case *object:
		if _, ok := val.get("@type"); ok {
			return decodeTyped(val)
		}
		m := make(bytecode.Map, 0, len(val.keys))
		for _, k := range val.keys {
			v, err := decodeValue(val.values[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m = append(m, bytecode.Entry{Key: bytecode.String(k), Value: v})
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value %s", describe(raw))
	}
}

func decodeList(items []any) (bytecode.List, error) {
	l := make(bytecode.List, 0, len(items))
	for i, item := range items {
		v, err := decodeValue(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		l = append(l, v)
	}
	return l, nil
}

// decodeTyped decodes {"@type": T, "@value": V}.
func decodeTyped(obj *object) (bytecode.Value, error) {
	if err := obj.only("@type", "@value"); err != nil {
		return nil, err
	}
	rawType, _ := obj.get("@type")
	typ, ok := rawType.(string)
	if !ok {
		return nil, fmt.Errorf("@type must be a string")
	}
	raw, _ := obj.get("@value")

	if enumType, ok := enumTypes[typ]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s: value must be a string", typ)
		}
		return bytecode.Enum{Type: enumType, Name: name}, nil
	}

	v, err := decodeTypedValue(typ, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", typ, err)
	}
	return v, nil
}

func decodeTypedValue(typ string, raw any) (bytecode.Value, error) {
	switch typ {
	case "g:Int32":
		i, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, fmt.Errorf("%d overflows a 32-bit integer", i)
		}
		return bytecode.Int(i), nil
	case "g:Int64":
		i, err := toInt64(raw)
		return bytecode.Long(i), err
	case "g:Float":
		f, err := toFloat64(raw)
		return bytecode.Float(f), err
	case "g:Double":
		f, err := toFloat64(raw)
		return bytecode.Double(f), err
	case "g:UUID":
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("value must be a string")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		return bytecode.UUID(id), nil
	case "g:Date":
		ms, err := toInt64(raw)
		return bytecode.Date{Time: time.UnixMilli(ms).UTC()}, err
	case "g:Timestamp":
		ms, err := toInt64(raw)
		return bytecode.Timestamp{Time: time.UnixMilli(ms).UTC()}, err
	case "g:Class":
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("value must be a string")
		}
		return bytecode.Class(s), nil
	case "g:List":
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("value must be a list")
		}
		return decodeList(items)
	case "g:Set":
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("value must be a list")
		}
		l, err := decodeList(items)
		return bytecode.Set(l), err
	case "g:Map":
		return decodeMap(raw)
	case "g:P", "g:TextP":
		return decodePredicate(typ, raw)
	case "g:Binding":
		return decodeBinding(raw)
	case "g:Lambda":
		return decodeLambda(raw)
	case "g:Vertex":
		return decodeVertex(raw)
	case "g:Edge":
		return decodeEdge(raw)
	case "g:VertexProperty":
		return decodeVertexProperty(raw)
	case "g:Bytecode":
		return decodeBytecode(raw)
	case "g:Strategy":
		return decodeStrategy(raw)
	default:
		return nil, errUnsupportedType
	}
}

// decodeMap decodes the GraphSON flat [k1, v1, k2, v2] map form.
func decodeMap(raw any) (bytecode.Map, error) {
	items, ok := raw.([]any)
	if !ok || len(items)%2 != 0 {
		return nil, fmt.Errorf("value must be a list of alternating keys and values")
	}

	m := make(bytecode.Map, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		k, err := decodeValue(items[i])
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i/2, err)
		}
		v, err := decodeValue(items[i+1])
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i/2, err)
		}
		m = append(m, bytecode.Entry{Key: k, Value: v})
	}
	return m, nil
}

// decodePredicate decodes {"predicate": name, "value": v}. The and/or
// predicates carry a list of predicates as their value.
func decodePredicate(typ string, raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "predicate", "value")
	if err != nil {
		return nil, err
	}
	name, err := stringField(obj, "predicate")
	if err != nil {
		return nil, err
	}
	rawValue, _ := obj.get("value")

	if name == "and" || name == "or" {
		items, ok := rawValue.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: value must be a list of predicates", name)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%s: needs at least one predicate", name)
		}
		preds := make([]bytecode.Predicate, 0, len(items))
		for i, item := range items {
			v, err := decodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			p, ok := v.(bytecode.Predicate)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: not a predicate", name, i)
			}
			preds = append(preds, p)
		}
		op := bytecode.ConnectiveAnd
		if name == "or" {
			op = bytecode.ConnectiveOr
		}
		return bytecode.ConnectiveP{Op: op, Predicates: preds}, nil
	}

	operand, err := decodeValue(rawValue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if typ == "g:TextP" {
		return bytecode.TextP{Name: name, Value: operand}, nil
	}
	return bytecode.P{Name: name, Value: operand}, nil
}

func decodeBinding(raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "key", "value")
	if err != nil {
		return nil, err
	}
	name, err := stringField(obj, "key")
	if err != nil {
		return nil, err
	}
	rawValue, _ := obj.get("value")
	v, err := decodeValue(rawValue)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", name, err)
	}
	return bytecode.Binding{Name: name, Value: v}, nil
}

func decodeLambda(raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "script", "language", "arguments")
	if err != nil {
		return nil, err
	}
	script, err := stringField(obj, "script")
	if err != nil {
		return nil, err
	}
	l := bytecode.Lambda{Script: script, Arguments: -1}
	if rawArgs, ok := obj.get("arguments"); ok {
		n, err := toInt64(rawArgs)
		if err != nil {
			return nil, fmt.Errorf("arguments: %w", err)
		}
		l.Arguments = int(n)
	}
	return l, nil
}

func decodeVertex(raw any) (bytecode.Vertex, error) {
	obj, err := fields(raw, "id", "label", "properties")
	if err != nil {
		return bytecode.Vertex{}, err
	}
	id, label, err := idAndLabel(obj)
	return bytecode.Vertex{ID: id, Label: label}, err
}

func decodeEdge(raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "id", "label", "outV", "outVLabel", "inV", "inVLabel", "properties")
	if err != nil {
		return nil, err
	}
	id, label, err := idAndLabel(obj)
	if err != nil {
		return nil, err
	}

	e := bytecode.Edge{ID: id, Label: label}
	rawOut, _ := obj.get("outV")
	if e.Out.ID, err = decodeValue(rawOut); err != nil {
		return nil, fmt.Errorf("outV: %w", err)
	}
	rawIn, _ := obj.get("inV")
	if e.In.ID, err = decodeValue(rawIn); err != nil {
		return nil, fmt.Errorf("inV: %w", err)
	}
	e.Out.Label = optionalString(obj, "outVLabel", defaultVertexLabel)
	e.In.Label = optionalString(obj, "inVLabel", defaultVertexLabel)
	return e, nil
}

func decodeVertexProperty(raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "id", "label", "value", "vertex", "vertexLabel")
	if err != nil {
		return nil, err
	}
	id, label, err := idAndLabel(obj)
	if err != nil {
		return nil, err
	}

	rawValue, _ := obj.get("value")
	v, err := decodeValue(rawValue)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	vp := bytecode.VertexProperty{ID: id, Label: label, Value: v}

	if rawVertex, ok := obj.get("vertex"); ok {
		vid, err := decodeValue(rawVertex)
		if err != nil {
			return nil, fmt.Errorf("vertex: %w", err)
		}
		vp.Element = &bytecode.Vertex{ID: vid, Label: optionalString(obj, "vertexLabel", defaultVertexLabel)}
	}
	return vp, nil
}

// decodeStrategy decodes {"class": name, "configuration": {...}}.
func decodeStrategy(raw any) (bytecode.Value, error) {
	obj, err := fields(raw, "class", "configuration")
	if err != nil {
		return nil, err
	}
	class, err := stringField(obj, "class")
	if err != nil {
		return nil, err
	}

	s := bytecode.Strategy{Class: class}
	if rawConfig, ok := obj.get("configuration"); ok {
		v, err := decodeValue(rawConfig)
		if err != nil {
			return nil, fmt.Errorf("configuration: %w", err)
		}
		m, ok := v.(bytecode.Map)
		if !ok {
			return nil, fmt.Errorf("configuration must be a map")
		}
		s.Configuration = m
	}
	return s, nil
}

func idAndLabel(obj *object) (bytecode.Value, string, error) {
	rawID, _ := obj.get("id")
	id, err := decodeValue(rawID)
	if err != nil {
		return nil, "", fmt.Errorf("id: %w", err)
	}
	return id, optionalString(obj, "label", defaultVertexLabel), nil
}

// fields asserts raw is an object holding only the allowed keys.
func fields(raw any, allowed ...string) (*object, error) {
	obj, ok := raw.(*object)
	if !ok {
		return nil, fmt.Errorf("value must be an object, got %s", describe(raw))
	}
	if err := obj.only(allowed...); err != nil {
		return nil, err
	}
	return obj, nil
}

func stringField(obj *object, key string) (string, error) {
	raw, ok := obj.get(key)
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func optionalString(obj *object, key, fallback string) string {
	if s, ok := obj.values[key].(string); ok {
		return s
	}
	return fallback
}

func toInt64(raw any) (int64, error) {
	switch n := raw.(type) {
	case json.Number:
		return n.Int64()
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %s", describe(raw))
	}
}

func toFloat64(raw any) (float64, error) {
	switch n := raw.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case string:
		switch n {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("expected a number, got %s", describe(raw))
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case *object:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
