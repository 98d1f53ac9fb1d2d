package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
	IsIn     bool
	Values   []any
	Negate   bool // For NOT IN conditions
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	selectCols []string
	wheres     []*WhereClause
	orders     []*OrderClause
	limitVal   *int
	offsetVal  *int

	// Relations to preload
	relations []string

	// Timeout
	timeout time.Duration
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:         db,
		selectCols: []string{},
		wheres:     []*WhereClause{},
		orders:     []*OrderClause{},
		relations:  []string{},
	}
}

// Table sets the table name explicitly
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Select specifies the columns to select
func (q *QueryBuilder[T]) Select(columns ...string) *QueryBuilder[T] {
	q.selectCols = append(q.selectCols, columns...)
	return q
}

// Where adds an equality condition
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "=", Value: value})
	return q
}

// WhereOp adds a condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: operator, Value: value})
	return q
}

// WhereIn adds an IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, IsIn: true, Values: values})
	return q
}

// WhereNotIn adds a NOT IN condition
func (q *QueryBuilder[T]) WhereNotIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, IsIn: true, Values: values, Negate: true})
	return q
}

// WhereRaw adds a raw SQL condition with placeholders
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: string(direction)})
	return q
}

// Limit sets the LIMIT
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation preloads a named relation
func (q *QueryBuilder[T]) Relation(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}

// Timeout sets a per-query timeout
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// applyContext wraps the context with the configured timeout, if any
func (q *QueryBuilder[T]) applyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

// buildSelect maps the recorded clauses onto a bun select query
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}

	for _, col := range q.selectCols {
		query = query.Column(col)
	}

	query = applyWheresToSelect(query, q.wheres)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, order := range q.orders {
		if order.Direction == string(DESC) {
			query = query.OrderExpr("? DESC", bun.Ident(order.Column))
		} else {
			query = query.OrderExpr("? ASC", bun.Ident(order.Column))
		}
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

func applyWheresToSelect(query *bun.SelectQuery, wheres []*WhereClause) *bun.SelectQuery {
	for _, w := range wheres {
		switch {
		case w.IsRaw:
			query = query.Where(w.RawSQL, w.RawArgs...)
		case w.IsIn && w.Negate:
			query = query.Where("? NOT IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		case w.IsIn:
			query = query.Where("? IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		default:
			query = query.Where("? "+w.Operator+" ?", bun.Ident(w.Column), w.Value)
		}
	}
	return query
}

func applyWheresToUpdate(query *bun.UpdateQuery, wheres []*WhereClause) *bun.UpdateQuery {
	for _, w := range wheres {
		switch {
		case w.IsRaw:
			query = query.Where(w.RawSQL, w.RawArgs...)
		case w.IsIn && w.Negate:
			query = query.Where("? NOT IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		case w.IsIn:
			query = query.Where("? IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		default:
			query = query.Where("? "+w.Operator+" ?", bun.Ident(w.Column), w.Value)
		}
	}
	return query
}

func applyWheresToDelete(query *bun.DeleteQuery, wheres []*WhereClause) *bun.DeleteQuery {
	for _, w := range wheres {
		switch {
		case w.IsRaw:
			query = query.Where(w.RawSQL, w.RawArgs...)
		case w.IsIn && w.Negate:
			query = query.Where("? NOT IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		case w.IsIn:
			query = query.Where("? IN (?)", bun.Ident(w.Column), bun.In(w.Values))
		default:
			query = query.Where("? "+w.Operator+" ?", bun.Ident(w.Column), w.Value)
		}
	}
	return query
}
