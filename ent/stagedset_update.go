// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jaemin/econquiz/ent/predicate"
	"github.com/jaemin/econquiz/ent/stagedset"
)

// StagedSetUpdate is the builder for updating StagedSet entities.
type StagedSetUpdate struct {
	config
	hooks    []Hook
	mutation *StagedSetMutation
}

// Where appends a list predicates to the StagedSetUpdate builder.
func (_u *StagedSetUpdate) Where(ps ...predicate.StagedSet) *StagedSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSetID sets the "set_id" field.
func (_u *StagedSetUpdate) SetSetID(v string) *StagedSetUpdate {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *StagedSetUpdate) SetNillableSetID(v *string) *StagedSetUpdate {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StagedSetUpdate) SetSource(v string) *StagedSetUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StagedSetUpdate) SetNillableSource(v *string) *StagedSetUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagedSetUpdate) SetPayload(v string) *StagedSetUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *StagedSetUpdate) SetNillablePayload(v *string) *StagedSetUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StagedSetUpdate) SetCreatedAt(v time.Time) *StagedSetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StagedSetUpdate) SetNillableCreatedAt(v *time.Time) *StagedSetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StagedSetMutation object of the builder.
func (_u *StagedSetUpdate) Mutation() *StagedSetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StagedSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagedSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StagedSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagedSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagedSetUpdate) check() error {
	if v, ok := _u.mutation.SetID(); ok {
		if err := stagedset.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "StagedSet.set_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := stagedset.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StagedSet.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Payload(); ok {
		if err := stagedset.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "StagedSet.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *StagedSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagedset.Table, stagedset.Columns, sqlgraph.NewFieldSpec(stagedset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(stagedset.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(stagedset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagedset.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagedset.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagedset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StagedSetUpdateOne is the builder for updating a single StagedSet entity.
type StagedSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StagedSetMutation
}

// SetSetID sets the "set_id" field.
func (_u *StagedSetUpdateOne) SetSetID(v string) *StagedSetUpdateOne {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *StagedSetUpdateOne) SetNillableSetID(v *string) *StagedSetUpdateOne {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *StagedSetUpdateOne) SetSource(v string) *StagedSetUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *StagedSetUpdateOne) SetNillableSource(v *string) *StagedSetUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StagedSetUpdateOne) SetPayload(v string) *StagedSetUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *StagedSetUpdateOne) SetNillablePayload(v *string) *StagedSetUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StagedSetUpdateOne) SetCreatedAt(v time.Time) *StagedSetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StagedSetUpdateOne) SetNillableCreatedAt(v *time.Time) *StagedSetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StagedSetMutation object of the builder.
func (_u *StagedSetUpdateOne) Mutation() *StagedSetMutation {
	return _u.mutation
}

// Where appends a list predicates to the StagedSetUpdate builder.
func (_u *StagedSetUpdateOne) Where(ps ...predicate.StagedSet) *StagedSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StagedSetUpdateOne) Select(field string, fields ...string) *StagedSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StagedSet entity.
func (_u *StagedSetUpdateOne) Save(ctx context.Context) (*StagedSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StagedSetUpdateOne) SaveX(ctx context.Context) *StagedSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StagedSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StagedSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StagedSetUpdateOne) check() error {
	if v, ok := _u.mutation.SetID(); ok {
		if err := stagedset.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "StagedSet.set_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := stagedset.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StagedSet.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Payload(); ok {
		if err := stagedset.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "StagedSet.payload": %w`, err)}
		}
	}
	return nil
}

func (_u *StagedSetUpdateOne) sqlSave(ctx context.Context) (_node *StagedSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagedset.Table, stagedset.Columns, sqlgraph.NewFieldSpec(stagedset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StagedSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagedset.FieldID)
		for _, f := range fields {
			if !stagedset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagedset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(stagedset.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(stagedset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagedset.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagedset.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &StagedSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagedset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
