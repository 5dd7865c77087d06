package query

import (
	"fmt"
	"strings"
)

type projectedColumn struct {
	expr  string
	field string
}

// ProjectionMap maps logical field names to qualified SQL columns for a table.
// Field names are the names callers use in filters and sort requests; columns
// are the physical names the queries are built against.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	joins   []string
	columns []projectedColumn
	index   map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified table and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		index:  make(map[string]string),
	}
}

// Project registers a column on the base table under the given field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	expr := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, projectedColumn{expr: expr, field: field})
	p.index[field] = expr
	return p
}

// ProjectJoined registers an already-qualified column expression from a joined
// table under the given field name.
func (p *ProjectionMap) ProjectJoined(expr, field string) *ProjectionMap {
	p.columns = append(p.columns, projectedColumn{expr: expr, field: field})
	p.index[field] = expr
	return p
}

// Join appends a JOIN clause to the FROM source of every built query.
func (p *ProjectionMap) Join(clause string) *ProjectionMap {
	p.joins = append(p.joins, clause)
	return p
}

// Table returns the FROM source: the aliased base table plus any joins.
func (p *ProjectionMap) Table() string {
	source := fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
	if len(p.joins) > 0 {
		source += " " + strings.Join(p.joins, " ")
	}
	return source
}

// Columns returns the comma-separated select list in registration order.
func (p *ProjectionMap) Columns() string {
	exprs := make([]string, len(p.columns))
	for i, c := range p.columns {
		exprs[i] = c.expr
	}
	return strings.Join(exprs, ", ")
}

// Column returns the qualified column expression for a field name.
// Unknown fields return an empty string.
func (p *ProjectionMap) Column(field string) string {
	return p.index[field]
}

// HasField reports whether the projection maps the given field name.
func (p *ProjectionMap) HasField(field string) bool {
	_, ok := p.index[field]
	return ok
}
