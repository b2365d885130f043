// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// RequestEvent is the predicate function for requestevent builders.
type RequestEvent func(*sql.Selector)

// StagedSet is the predicate function for stagedset builders.
type StagedSet func(*sql.Selector)
