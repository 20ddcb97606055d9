package database

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	// Query clauses
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

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
	Negate   bool
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

// Table overrides the table name derived from the model
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Select restricts the selected columns
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

// WhereNot adds a negated equality condition
func (q *QueryBuilder[T]) WhereNot(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "=", Value: value, Negate: true})
	return q
}

// WhereIn adds an IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IN", Value: values})
	return q
}

// WhereNotIn adds a NOT IN condition
func (q *QueryBuilder[T]) WhereNotIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "NOT IN", Value: values})
	return q
}

// WhereNull adds an IS NULL condition
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IS NULL"})
	return q
}

// WhereNotNull adds an IS NOT NULL condition
func (q *QueryBuilder[T]) WhereNotNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IS NOT NULL"})
	return q
}

// WhereILike adds a case-insensitive substring condition. The pattern should
// already contain any % wildcards the caller wants.
func (q *QueryBuilder[T]) WhereILike(column, pattern string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "ILIKE", Value: pattern})
	return q
}

// WhereRaw adds a raw SQL condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: string(direction)})
	return q
}

// Limit sets the maximum number of rows
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the row offset
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation preloads a named relation
func (q *QueryBuilder[T]) Relation(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}

// Timeout sets a per-query timeout applied at execution time
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// buildSelect assembles a bun SelectQuery for the given model target.
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}

	for _, col := range q.selectCols {
		query = query.Column(col)
	}

	query = applyWheres(query, q.wheres)

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// whereApplier is satisfied by bun's Select/Update/Delete query types.
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}

		switch where.Operator {
		case "IS NULL", "IS NOT NULL":
			query = query.Where(fmt.Sprintf("? %s", where.Operator), bun.Ident(where.Column))
		case "IN":
			query = query.Where("? IN (?)", bun.Ident(where.Column), bun.In(where.Value))
		case "NOT IN":
			query = query.Where("? NOT IN (?)", bun.Ident(where.Column), bun.In(where.Value))
		default:
			if where.Negate {
				query = query.Where(fmt.Sprintf("NOT (? %s ?)", where.Operator), bun.Ident(where.Column), where.Value)
			} else {
				query = query.Where(fmt.Sprintf("? %s ?", where.Operator), bun.Ident(where.Column), where.Value)
			}
		}
	}
	return query
}
