// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jaemin/econquiz/ent/stagedset"
)

// StagedSet is the model entity for the StagedSet schema.
type StagedSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client-side problem set id
	SetID string `json:"set_id,omitempty"`
	// generated or retry
	Source string `json:"source,omitempty"`
	// Problem set serialized as JSON; validated on load
	Payload string `json:"payload,omitempty"`
	// When the set was staged
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StagedSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagedset.FieldID:
			values[i] = new(sql.NullInt64)
		case stagedset.FieldSetID, stagedset.FieldSource, stagedset.FieldPayload:
			values[i] = new(sql.NullString)
		case stagedset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StagedSet fields.
func (_m *StagedSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagedset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stagedset.FieldSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_id", values[i])
			} else if value.Valid {
				_m.SetID = value.String
			}
		case stagedset.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case stagedset.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				_m.Payload = value.String
			}
		case stagedset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StagedSet.
// This includes values selected through modifiers, order, etc.
func (_m *StagedSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StagedSet.
// Note that you need to call StagedSet.Unwrap() before calling this method if this StagedSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StagedSet) Update() *StagedSetUpdateOne {
	return NewStagedSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StagedSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StagedSet) Unwrap() *StagedSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StagedSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StagedSet) String() string {
	var builder strings.Builder
	builder.WriteString("StagedSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("set_id=")
	builder.WriteString(_m.SetID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(_m.Payload)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StagedSets is a parsable slice of StagedSet.
type StagedSets []*StagedSet
