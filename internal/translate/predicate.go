package translate

import (
	"fmt"
	"strings"

	"github.com/roach88/bytescript/internal/bytecode"
)

// renderPredicate renders P.name(v), TextP.name(v), or a connective chain
// p1.and(p2).and(p3). The first predicate of a chain carries no prefix.
func renderPredicate(p bytecode.Predicate) (string, error) {
	switch pred := p.(type) {
	case bytecode.P:
		return renderComparison("P", pred.Name, pred.Value)
	case bytecode.TextP:
		return renderComparison("TextP", pred.Name, pred.Value)
	case bytecode.ConnectiveP:
		if len(pred.Predicates) == 0 {
			return "", &EmptyConnectiveError{Op: pred.Op.String()}
		}
		var b strings.Builder
		for i, sub := range pred.Predicates {
			s, err := renderPredicate(sub)
			if err != nil {
				return "", err
			}
			if i == 0 {
				b.WriteString(s)
				continue
			}
			b.WriteByte('.')
			b.WriteString(pred.Op.String())
			b.WriteByte('(')
			b.WriteString(s)
			b.WriteByte(')')
		}
		return b.String(), nil
	default:
		return fmt.Sprint(p), nil
	}
}

func renderComparison(namespace, name string, operand bytecode.Value) (string, error) {
	s, err := Render(operand)
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", namespace, name, err)
	}
	return namespace + "." + name + "(" + s + ")", nil
}
