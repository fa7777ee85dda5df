// Package query builds bounded, ordered, parameterized SELECT
// statements from typed predicates. Builders accumulate predicates;
// Build renders them for a placeholder dialect. Column names are
// always compile-time literals supplied by the repositories, so only
// values travel as bind parameters.
package query

import (
	"strconv"
	"strings"
)

// Dialect selects the bind-parameter style of the rendered SQL.
type Dialect int

const (
	// Question renders ? placeholders (sqlite).
	Question Dialect = iota
	// Dollar renders $1..$n placeholders (postgres).
	Dollar
)

// Placeholder returns the bind marker for the n-th parameter (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == Dollar {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Placeholders returns a comma-separated list of n bind markers,
// suitable for a VALUES clause.
func (d Dialect) Placeholders(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = d.Placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}

// Direction is an ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type op int

const (
	opEq      op = iota // column = value
	opEqFold            // case-normalized equality for short enum codes
	opGte               // column >= value
	opAnyLike           // case-insensitive substring over one or more columns, ORed
)

type predicate struct {
	value   any
	column  string
	columns []string
	op      op
}

type ordering struct {
	column string
	dir    Direction
}

// Builder accumulates predicates, orderings and a bound for one
// SELECT. The zero limit renders no LIMIT clause; repositories always
// set one.
type Builder struct {
	table   string
	columns []string
	preds   []predicate
	orders  []ordering
	limit   int
}

// Select starts a builder reading the given columns from table.
func Select(table string, columns ...string) *Builder {
	return &Builder{table: table, columns: columns}
}

// WhereEq adds an exact-equality predicate. Use for numeric filters.
func (b *Builder) WhereEq(column string, value any) *Builder {
	b.preds = append(b.preds, predicate{op: opEq, column: column, value: value})
	return b
}

// WhereEqFold adds a case-insensitive equality predicate for short
// enumeration codes (state, party, chamber, bill type). Both sides are
// normalized to lower case before comparison.
func (b *Builder) WhereEqFold(column, value string) *Builder {
	b.preds = append(b.preds, predicate{op: opEqFold, column: column, value: strings.ToLower(value)})
	return b
}

// WhereGte adds a threshold predicate: column >= value.
func (b *Builder) WhereGte(column string, value any) *Builder {
	b.preds = append(b.preds, predicate{op: opGte, column: column, value: value})
	return b
}

// WhereLike adds a case-insensitive substring predicate on one column.
func (b *Builder) WhereLike(column, value string) *Builder {
	return b.WhereAnyLike(value, column)
}

// WhereAnyLike adds one parenthesized predicate matching value as a
// case-insensitive substring of any of the given columns (OR within
// the group, ANDed with everything else). This is the keyword fan-out.
func (b *Builder) WhereAnyLike(value string, columns ...string) *Builder {
	b.preds = append(b.preds, predicate{op: opAnyLike, columns: columns, value: likePattern(value)})
	return b
}

// OrderBy appends an ordering term. Repositories append the primary
// key last so repeated identical queries return rows in a stable total
// order.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	b.orders = append(b.orders, ordering{column: column, dir: dir})
	return b
}

// Limit bounds the result set. Values <= 0 are ignored; callers coerce
// user input to a positive default before reaching the builder.
func (b *Builder) Limit(n int) *Builder {
	if n > 0 {
		b.limit = n
	}
	return b
}

// Build renders the accumulated query for the dialect and returns the
// SQL text plus the bind arguments in placeholder order. Absent
// filters impose no constraint: the WHERE clause starts from 1=1.
func (b *Builder) Build(d Dialect) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(b.preds)+1)

	bind := func(v any) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
	sb.WriteString(" WHERE 1=1")

	for _, p := range b.preds {
		switch p.op {
		case opEq:
			sb.WriteString(" AND ")
			sb.WriteString(p.column)
			sb.WriteString(" = ")
			sb.WriteString(bind(p.value))
		case opEqFold:
			sb.WriteString(" AND LOWER(")
			sb.WriteString(p.column)
			sb.WriteString(") = ")
			sb.WriteString(bind(p.value))
		case opGte:
			sb.WriteString(" AND ")
			sb.WriteString(p.column)
			sb.WriteString(" >= ")
			sb.WriteString(bind(p.value))
		case opAnyLike:
			sb.WriteString(" AND (")
			for i, col := range p.columns {
				if i > 0 {
					sb.WriteString(" OR ")
				}
				sb.WriteString("LOWER(")
				sb.WriteString(col)
				sb.WriteString(") LIKE ")
				sb.WriteString(bind(p.value))
				sb.WriteString(` ESCAPE '\'`)
			}
			sb.WriteString(")")
		}
	}

	if len(b.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range b.orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.column)
			sb.WriteString(" ")
			sb.WriteString(string(o.dir))
		}
	}

	if b.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(bind(b.limit))
	}

	return sb.String(), args
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lowercases and escapes a raw term and wraps it for
// substring matching.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
