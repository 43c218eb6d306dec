package query

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDialect = goqu.Dialect("postgres")

func TestFilter_Contains_BuildsCaseInsensitiveSubstringPredicate(t *testing.T) {
	f := NewFilter().Contains("title", "go")

	sqlStr, args, err := f.Apply(testDialect.From("books").Select("id")).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "ILIKE")
	assert.Equal(t, []interface{}{"%go%"}, args)
}

func TestFilter_Contains_SkipsEmptyValues(t *testing.T) {
	f := NewFilter().
		Contains("title", "").
		Contains("author", "").
		Contains("isbn", "")

	assert.True(t, f.IsEmpty())
	assert.Empty(t, f.Expressions())
}

func TestFilter_Apply_WildcardLeavesStatementUntouched(t *testing.T) {
	ds := testDialect.From("books").Select("id")

	sqlStr, _, err := NewFilter().Apply(ds).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.NotContains(t, sqlStr, "WHERE")
}

func TestFilter_Contains_QualifiedColumn(t *testing.T) {
	f := NewFilter().Contains("b.isbn", "123")

	sqlStr, args, err := f.Apply(testDialect.From(goqu.T("loans").As("l")).Select("l.id")).
		Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, `"b"."isbn"`)
	assert.Equal(t, []interface{}{"%123%"}, args)
}

func TestFilter_MultiplePredicatesAllMustMatch(t *testing.T) {
	f := NewFilter().
		Contains("customer", "ful").
		Contains("isbn", "123")

	sqlStr, args, err := f.Apply(testDialect.From("loans").Select("id")).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "AND")
	assert.Len(t, args, 2)
}

func TestFilter_Eq(t *testing.T) {
	f := NewFilter().Eq("book_id", int64(7))

	sqlStr, args, err := f.Apply(testDialect.From("loans").Select("id")).Prepared(true).ToSQL()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, `"book_id"`)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), "input %q", tt.in)
	}
}
