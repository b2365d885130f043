// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "problemset_id", Type: field.TypeString, Nullable: true},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
		},
	}
	// RequestEventsColumns holds the columns for the "request_events" table.
	RequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "method", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// RequestEventsTable holds the schema information for the "request_events" table.
	RequestEventsTable = &schema.Table{
		Name:       "request_events",
		Columns:    RequestEventsColumns,
		PrimaryKey: []*schema.Column{RequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[1]},
			},
			{
				Name:    "requestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[2]},
			},
			{
				Name:    "requestevent_path",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[4]},
			},
			{
				Name:    "requestevent_success",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[7]},
			},
		},
	}
	// StagedSetsColumns holds the columns for the "staged_sets" table.
	StagedSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "set_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StagedSetsTable holds the schema information for the "staged_sets" table.
	StagedSetsTable = &schema.Table{
		Name:       "staged_sets",
		Columns:    StagedSetsColumns,
		PrimaryKey: []*schema.Column{StagedSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagedset_created_at",
				Unique:  false,
				Columns: []*schema.Column{StagedSetsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		RequestEventsTable,
		StagedSetsTable,
	}
)

func init() {
}
