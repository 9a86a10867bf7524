package querybuilder

import (
	"fmt"
	"strings"
)

// Connective joins a condition to the one before it
type Connective string

const (
	ConnAnd Connective = "AND"
	ConnOr  Connective = "OR"
)

// Condition is a single clause or, when group is set, a parenthesised list of conditions
type Condition struct {
	conn   Connective
	clause string
	args   []interface{}
	group  []Condition
}

func (c Condition) empty() bool {
	return c.clause == "" && len(c.group) == 0
}

// renderConditions writes conditions in order; empty groups are dropped with their connective
func renderConditions(conditions []Condition) (string, []interface{}) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	for _, cond := range conditions {
		if cond.empty() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" " + string(cond.conn) + " ")
		}
		if cond.group == nil {
			sb.WriteString(cond.clause)
			args = append(args, cond.args...)
			continue
		}
		clause, groupArgs := renderConditions(cond.group)
		sb.WriteString("(" + clause + ")")
		args = append(args, groupArgs...)
	}
	return sb.String(), args
}

type JoinType string

const (
	JoinTypeInner JoinType = "INNER JOIN"
	JoinTypeLeft  JoinType = "LEFT JOIN"
)

type join struct {
	joinType JoinType
	table    string
	alias    string
	on       string
}

func (j join) render(qualified func(string) string) string {
	return fmt.Sprintf(" %s %s %s ON %s", j.joinType, qualified(j.table), j.alias, j.on)
}
