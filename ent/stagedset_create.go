// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jaemin/econquiz/ent/stagedset"
)

// StagedSetCreate is the builder for creating a StagedSet entity.
type StagedSetCreate struct {
	config
	mutation *StagedSetMutation
	hooks    []Hook
}

// SetSetID sets the "set_id" field.
func (_c *StagedSetCreate) SetSetID(v string) *StagedSetCreate {
	_c.mutation.SetSetID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *StagedSetCreate) SetSource(v string) *StagedSetCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StagedSetCreate) SetPayload(v string) *StagedSetCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StagedSetCreate) SetCreatedAt(v time.Time) *StagedSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StagedSetCreate) SetNillableCreatedAt(v *time.Time) *StagedSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StagedSetMutation object of the builder.
func (_c *StagedSetCreate) Mutation() *StagedSetMutation {
	return _c.mutation
}

// Save creates the StagedSet in the database.
func (_c *StagedSetCreate) Save(ctx context.Context) (*StagedSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StagedSetCreate) SaveX(ctx context.Context) *StagedSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagedSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagedSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StagedSetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagedset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StagedSetCreate) check() error {
	if _, ok := _c.mutation.SetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "StagedSet.set_id"`)}
	}
	if v, ok := _c.mutation.SetID(); ok {
		if err := stagedset.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "StagedSet.set_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "StagedSet.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := stagedset.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "StagedSet.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StagedSet.payload"`)}
	}
	if v, ok := _c.mutation.Payload(); ok {
		if err := stagedset.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "StagedSet.payload": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StagedSet.created_at"`)}
	}
	return nil
}

func (_c *StagedSetCreate) sqlSave(ctx context.Context) (*StagedSet, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StagedSetCreate) createSpec() (*StagedSet, *sqlgraph.CreateSpec) {
	var (
		_node = &StagedSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagedset.Table, sqlgraph.NewFieldSpec(stagedset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SetID(); ok {
		_spec.SetField(stagedset.FieldSetID, field.TypeString, value)
		_node.SetID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(stagedset.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagedset.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagedset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StagedSetCreateBulk is the builder for creating many StagedSet entities in bulk.
type StagedSetCreateBulk struct {
	config
	err      error
	builders []*StagedSetCreate
}

// Save creates the StagedSet entities in the database.
func (_c *StagedSetCreateBulk) Save(ctx context.Context) ([]*StagedSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StagedSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StagedSetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StagedSetCreateBulk) SaveX(ctx context.Context) []*StagedSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StagedSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StagedSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
