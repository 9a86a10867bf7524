package querybuilder

import (
	"fmt"
	"strings"
)

type QueryBuilder interface {
	Select(cols ...string) QueryBuilder
	From(table string) QueryBuilder
	Into(table string) QueryBuilder
	Where(clause string, args ...interface{}) QueryBuilder

	Or(clause string, args ...interface{}) QueryBuilder
	And(clause string, args ...interface{}) QueryBuilder

	AndGroup(fn func(qb QueryBuilder)) QueryBuilder
	OrGroup(fn func(qb QueryBuilder)) QueryBuilder

	OrderBy(col string, asc bool) QueryBuilder
	Limit(n int) QueryBuilder
	Join(joinType JoinType, table, alias, on string) QueryBuilder

	Insert(cols ...string) QueryBuilder
	Values(values ...interface{}) QueryBuilder

	Update(table string, data UpdateData) QueryBuilder
	Build() (string, []interface{})

	SetExclude(cols ...string) QueryBuilder
	OnConflict(cols ...string) QueryBuilder

	getConditions() []Condition
}

type queryBuilder struct {
	table       string
	alias       string
	cols        []string
	conditions  []Condition
	joins       []join
	values      InsertRows
	updateData  UpdateData
	orderBy     []string
	limit       int
	excludeCols []string
	onConflict  []string
	schema      string
}

func (q *queryBuilder) SetExclude(cols ...string) QueryBuilder {
	q.excludeCols = cols
	return q
}

func (q *queryBuilder) OnConflict(cols ...string) QueryBuilder {
	q.onConflict = cols
	return q
}

func (q *queryBuilder) getConditions() []Condition {
	return q.conditions
}

func (q *queryBuilder) Select(cols ...string) QueryBuilder {
	q.cols = append(q.cols, cols...)
	return q
}

func (q *queryBuilder) Insert(cols ...string) QueryBuilder {
	q.cols = cols
	return q
}

func (q *queryBuilder) Values(values ...interface{}) QueryBuilder {
	q.values = append(q.values, values)
	return q
}

func (q *queryBuilder) Update(table string, data UpdateData) QueryBuilder {
	q.table = table
	q.updateData = data
	return q
}

func (q *queryBuilder) Or(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, Condition{
		conn:   ConnOr,
		clause: clause,
		args:   args,
	})
	return q
}

func (q *queryBuilder) And(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, Condition{
		conn:   ConnAnd,
		clause: clause,
		args:   args,
	})
	return q
}

func (q *queryBuilder) group(conn Connective, fn func(qb QueryBuilder)) QueryBuilder {
	sub := NewQueryBuilder(q.schema)
	fn(sub)
	q.conditions = append(q.conditions, Condition{
		conn:  conn,
		group: sub.getConditions(),
	})
	return q
}

func (q *queryBuilder) AndGroup(fn func(qb QueryBuilder)) QueryBuilder {
	return q.group(ConnAnd, fn)
}

func (q *queryBuilder) OrGroup(fn func(qb QueryBuilder)) QueryBuilder {
	return q.group(ConnOr, fn)
}

func (q *queryBuilder) OrderBy(col string, asc bool) QueryBuilder {
	orderVector := "ASC"
	if !asc {
		orderVector = "DESC"
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", col, orderVector))
	return q
}

func (q *queryBuilder) Limit(n int) QueryBuilder {
	q.limit = n
	return q
}

// From accepts an optional alias: From("solutions s")
func (q *queryBuilder) From(table string) QueryBuilder {
	if name, alias, ok := strings.Cut(table, " "); ok {
		q.table, q.alias = name, strings.TrimSpace(alias)
		return q
	}
	q.table = table
	return q
}

func (q *queryBuilder) Into(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Where(clause string, args ...interface{}) QueryBuilder {
	return q.And(clause, args...)
}

func (q *queryBuilder) Join(joinType JoinType, table, alias, on string) QueryBuilder {
	q.joins = append(q.joins, join{
		joinType: joinType,
		table:    table,
		alias:    alias,
		on:       on,
	})
	return q
}

// Build renders the query with `?` placeholders; callers rebind for their driver
func (q *queryBuilder) Build() (string, []interface{}) {
	switch {
	case len(q.values) > 0:
		return q.buildInsert()
	case len(q.updateData) > 0:
		return q.buildUpdate()
	default:
		return q.buildSelect()
	}
}

func (q *queryBuilder) qualified(table string) string {
	if q.schema == "" {
		return table
	}
	return fmt.Sprintf("%s.%s", q.schema, table)
}

func (q *queryBuilder) buildSelect() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(q.cols, ", "), q.qualified(q.table))
	if q.alias != "" {
		query += " " + q.alias
	}
	for _, j := range q.joins {
		query += j.render(q.qualified)
	}

	var args []interface{}

	if len(q.conditions) > 0 {
		condition, condArgs := renderConditions(q.conditions)
		query += fmt.Sprintf(" WHERE %s", condition)
		args = append(args, condArgs...)
	}

	if len(q.orderBy) > 0 {
		query += fmt.Sprintf(" ORDER BY %s", strings.Join(q.orderBy, ", "))
	}

	if q.limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.limit)
	}

	return query, args
}

func (q *queryBuilder) buildInsert() (string, []interface{}) {
	numOfParam := len(q.cols)
	if numOfParam == 0 {
		return "", nil
	}

	valueTuples := make([]string, len(q.values))
	args := make([]interface{}, 0, len(q.values)*numOfParam)
	placeholders := fmt.Sprintf("(%s)", strings.TrimSuffix(strings.Repeat("?, ", numOfParam), ", "))

	for i, row := range q.values {
		if len(row) != numOfParam {
			return "", nil
		}
		args = append(args, row...)
		valueTuples[i] = placeholders
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		q.qualified(q.table), strings.Join(q.cols, ", "), strings.Join(valueTuples, ", "))

	if len(q.onConflict) > 0 {
		query += fmt.Sprintf(" ON CONFLICT (%s)", strings.Join(q.onConflict, ", "))
		if len(q.excludeCols) == 0 {
			return query + " DO NOTHING", args
		}
		sets := make([]string, 0, len(q.excludeCols))
		for _, col := range q.excludeCols {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
		query += " DO UPDATE SET " + strings.Join(sets, ", ")
	}

	return query, args
}

func (q *queryBuilder) buildUpdate() (string, []interface{}) {
	setClause := make([]string, 0, len(q.updateData))
	args := make([]interface{}, 0, len(q.updateData))
	for _, a := range q.updateData {
		if raw, ok := a.Value.(Raw); ok {
			setClause = append(setClause, fmt.Sprintf("%s = %s", a.Column, raw))
			continue
		}
		setClause = append(setClause, fmt.Sprintf("%s = ?", a.Column))
		args = append(args, a.Value)
	}
	query := fmt.Sprintf("UPDATE %s SET %s", q.qualified(q.table), strings.Join(setClause, ", "))

	if len(q.conditions) > 0 {
		condition, condArgs := renderConditions(q.conditions)
		query += fmt.Sprintf(" WHERE %s", condition)
		args = append(args, condArgs...)
	}

	return query, args
}

func NewQueryBuilder(schema string) QueryBuilder {
	return &queryBuilder{
		schema: schema,
	}
}
