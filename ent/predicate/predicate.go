// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// JudgeEvent is the predicate function for judgeevent builders.
type JudgeEvent func(*sql.Selector)
