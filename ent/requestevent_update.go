// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jaemin/econquiz/ent/predicate"
	"github.com/jaemin/econquiz/ent/requestevent"
)

// RequestEventUpdate is the builder for updating RequestEvent entities.
type RequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *RequestEventMutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdate) Where(ps ...predicate.RequestEvent) *RequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMethod sets the "method" field.
func (_u *RequestEventUpdate) SetMethod(v string) *RequestEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableMethod(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *RequestEventUpdate) SetPath(v string) *RequestEventUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillablePath(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestEventUpdate) SetStatus(v int) *RequestEventUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableStatus(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RequestEventUpdate) AddStatus(v int) *RequestEventUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RequestEventUpdate) SetLatencyMs(v int64) *RequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableLatencyMs(v *int64) *RequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RequestEventUpdate) AddLatencyMs(v int64) *RequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RequestEventUpdate) SetSuccess(v bool) *RequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableSuccess(v *bool) *RequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestEventUpdate) SetErrorMessage(v string) *RequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableErrorMessage(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestEventUpdate) ClearErrorMessage() *RequestEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdate) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestEventUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := requestevent.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := requestevent.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.path": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(requestevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(requestevent.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(requestevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(requestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(requestevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestEventUpdateOne is the builder for updating a single RequestEvent entity.
type RequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestEventMutation
}

// SetMethod sets the "method" field.
func (_u *RequestEventUpdateOne) SetMethod(v string) *RequestEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableMethod(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *RequestEventUpdateOne) SetPath(v string) *RequestEventUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillablePath(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestEventUpdateOne) SetStatus(v int) *RequestEventUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableStatus(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RequestEventUpdateOne) AddStatus(v int) *RequestEventUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RequestEventUpdateOne) SetLatencyMs(v int64) *RequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableLatencyMs(v *int64) *RequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RequestEventUpdateOne) AddLatencyMs(v int64) *RequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RequestEventUpdateOne) SetSuccess(v bool) *RequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableSuccess(v *bool) *RequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestEventUpdateOne) SetErrorMessage(v string) *RequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableErrorMessage(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestEventUpdateOne) ClearErrorMessage() *RequestEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdateOne) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdateOne) Where(ps ...predicate.RequestEvent) *RequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestEventUpdateOne) Select(field string, fields ...string) *RequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestEvent entity.
func (_u *RequestEventUpdateOne) Save(ctx context.Context) (*RequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdateOne) SaveX(ctx context.Context) *RequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := requestevent.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := requestevent.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "RequestEvent.path": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestEventUpdateOne) sqlSave(ctx context.Context) (_node *RequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestevent.FieldID)
		for _, f := range fields {
			if !requestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestevent.FieldID {
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
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(requestevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(requestevent.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(requestevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(requestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(requestevent.FieldErrorMessage, field.TypeString)
	}
	_node = &RequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
