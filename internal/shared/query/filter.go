// Package query builds SQL predicates from partially-specified filter values.
//
// The matching contract is query-by-example: an unset field imposes no
// constraint, a set string field matches stored values that contain it as a
// case-insensitive substring. Repositories compose a Filter per entity and
// apply it to both the page query and the count query so totals stay in sync.
package query

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// Filter accumulates optional predicates. The zero value matches everything.
type Filter struct {
	exprs []exp.Expression
}

func NewFilter() *Filter {
	return &Filter{}
}

// Contains adds a case-insensitive substring predicate on the identifier
// (plain or table-qualified column). Empty values are skipped.
func (f *Filter) Contains(ident string, val string) *Filter {
	if val == "" {
		return f
	}
	f.exprs = append(f.exprs, goqu.I(ident).ILike("%"+EscapeLike(val)+"%"))
	return f
}

// Eq adds an equality predicate. Skipped when val is nil.
func (f *Filter) Eq(ident string, val interface{}) *Filter {
	if val == nil {
		return f
	}
	f.exprs = append(f.exprs, goqu.I(ident).Eq(val))
	return f
}

// IsEmpty reports whether no predicate was added, i.e. full wildcard.
func (f *Filter) IsEmpty() bool {
	return len(f.exprs) == 0
}

// Expressions returns the accumulated predicates, all of which must match.
func (f *Filter) Expressions() []exp.Expression {
	return f.exprs
}

// Apply attaches the predicates to a select statement. A wildcard filter
// leaves the statement untouched.
func (f *Filter) Apply(ds *goqu.SelectDataset) *goqu.SelectDataset {
	if f.IsEmpty() {
		return ds
	}
	return ds.Where(goqu.And(f.exprs...))
}

// EscapeLike neutralizes LIKE metacharacters in user-supplied filter values
// so they match literally.
func EscapeLike(val string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(val)
}
