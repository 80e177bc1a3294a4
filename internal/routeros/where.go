package routeros

import (
	"strconv"
	"strings"
)

// Where composes the predicate list of a print filter. Predicate methods skip
// empty values, so optional filters can be added unconditionally.
type Where struct {
	preds []string
	sep   string
}

// NewWhere returns a clause whose predicates are joined by a space, which
// RouterOS reads as AND.
func NewWhere() *Where {
	return &Where{sep: " "}
}

// NewWhereAnd returns a clause joined with an explicit " and ".
func NewWhereAnd() *Where {
	return &Where{sep: " and "}
}

// Match adds field~"pattern".
func (w *Where) Match(field, pattern string) *Where {
	if pattern == "" {
		return w
	}
	return w.Expr(field + "~" + Quote(pattern))
}

// Eq adds field="value".
func (w *Where) Eq(field, value string) *Where {
	if value == "" {
		return w
	}
	return w.Expr(field + "=" + Quote(value))
}

// EqIdent adds field=value without quotes.
func (w *Where) EqIdent(field, value string) *Where {
	if value == "" {
		return w
	}
	return w.Expr(field + "=" + ident(value))
}

// EqInt adds field=n when n is set.
func (w *Where) EqInt(field string, n *int) *Where {
	if n == nil {
		return w
	}
	return w.Expr(field + "=" + strconv.Itoa(*n))
}

// Yes adds field=yes when on is true.
func (w *Where) Yes(field string, on bool) *Where {
	if !on {
		return w
	}
	return w.Expr(field + "=yes")
}

// Any adds a disjunction of partial matches: (field~"a" or field~"b").
// A single value is added without parentheses.
func (w *Where) Any(field string, values ...string) *Where {
	var parts []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, field+"~"+Quote(v))
		}
	}
	switch len(parts) {
	case 0:
		return w
	case 1:
		return w.Expr(parts[0])
	default:
		return w.Expr("(" + strings.Join(parts, " or ") + ")")
	}
}

// Expr adds a raw predicate.
func (w *Where) Expr(expr string) *Where {
	if expr != "" {
		w.preds = append(w.preds, expr)
	}
	return w
}

// Empty reports whether no predicate was added.
func (w *Where) Empty() bool {
	return len(w.preds) == 0
}

func (w *Where) String() string {
	return strings.Join(w.preds, w.sep)
}
