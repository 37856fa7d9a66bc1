// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
)

// AdjustmentEventCreate is the builder for creating a AdjustmentEvent entity.
type AdjustmentEventCreate struct {
	config
	mutation *AdjustmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AdjustmentEventCreate) SetSequence(v int64) *AdjustmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AdjustmentEventCreate) SetTimestamp(v time.Time) *AdjustmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableTimestamp(v *time.Time) *AdjustmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AdjustmentEventCreate) SetUserID(v string) *AdjustmentEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AdjustmentEventCreate) SetSessionID(v string) *AdjustmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPreviousLevel sets the "previous_level" field.
func (_c *AdjustmentEventCreate) SetPreviousLevel(v int) *AdjustmentEventCreate {
	_c.mutation.SetPreviousLevel(v)
	return _c
}

// SetNewLevel sets the "new_level" field.
func (_c *AdjustmentEventCreate) SetNewLevel(v int) *AdjustmentEventCreate {
	_c.mutation.SetNewLevel(v)
	return _c
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_c *AdjustmentEventCreate) SetAdjustmentType(v string) *AdjustmentEventCreate {
	_c.mutation.SetAdjustmentType(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AdjustmentEventCreate) SetReason(v string) *AdjustmentEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableReason(v *string) *AdjustmentEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *AdjustmentEventCreate) SetTriggeredBy(v string) *AdjustmentEventCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetScaffoldingRecommended sets the "scaffolding_recommended" field.
func (_c *AdjustmentEventCreate) SetScaffoldingRecommended(v bool) *AdjustmentEventCreate {
	_c.mutation.SetScaffoldingRecommended(v)
	return _c
}

// SetNillableScaffoldingRecommended sets the "scaffolding_recommended" field if the given value is not nil.
func (_c *AdjustmentEventCreate) SetNillableScaffoldingRecommended(v *bool) *AdjustmentEventCreate {
	if v != nil {
		_c.SetScaffoldingRecommended(*v)
	}
	return _c
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_c *AdjustmentEventCreate) Mutation() *AdjustmentEventMutation {
	return _c.mutation
}

// Save creates the AdjustmentEvent in the database.
func (_c *AdjustmentEventCreate) Save(ctx context.Context) (*AdjustmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdjustmentEventCreate) SaveX(ctx context.Context) *AdjustmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdjustmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdjustmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdjustmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := adjustmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := adjustmentevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.ScaffoldingRecommended(); !ok {
		v := adjustmentevent.DefaultScaffoldingRecommended
		_c.mutation.SetScaffoldingRecommended(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdjustmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdjustmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AdjustmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AdjustmentEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := adjustmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AdjustmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := adjustmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousLevel(); !ok {
		return &ValidationError{Name: "previous_level", err: errors.New(`ent: missing required field "AdjustmentEvent.previous_level"`)}
	}
	if _, ok := _c.mutation.NewLevel(); !ok {
		return &ValidationError{Name: "new_level", err: errors.New(`ent: missing required field "AdjustmentEvent.new_level"`)}
	}
	if _, ok := _c.mutation.AdjustmentType(); !ok {
		return &ValidationError{Name: "adjustment_type", err: errors.New(`ent: missing required field "AdjustmentEvent.adjustment_type"`)}
	}
	if v, ok := _c.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AdjustmentEvent.reason"`)}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "AdjustmentEvent.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := adjustmentevent.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScaffoldingRecommended(); !ok {
		return &ValidationError{Name: "scaffolding_recommended", err: errors.New(`ent: missing required field "AdjustmentEvent.scaffolding_recommended"`)}
	}
	return nil
}

func (_c *AdjustmentEventCreate) sqlSave(ctx context.Context) (*AdjustmentEvent, error) {
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

func (_c *AdjustmentEventCreate) createSpec() (*AdjustmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdjustmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adjustmentevent.Table, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(adjustmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(adjustmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(adjustmentevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(adjustmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.PreviousLevel(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousLevel, field.TypeInt, value)
		_node.PreviousLevel = value
	}
	if value, ok := _c.mutation.NewLevel(); ok {
		_spec.SetField(adjustmentevent.FieldNewLevel, field.TypeInt, value)
		_node.NewLevel = value
	}
	if value, ok := _c.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
		_node.AdjustmentType = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(adjustmentevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(adjustmentevent.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.ScaffoldingRecommended(); ok {
		_spec.SetField(adjustmentevent.FieldScaffoldingRecommended, field.TypeBool, value)
		_node.ScaffoldingRecommended = value
	}
	return _node, _spec
}

// AdjustmentEventCreateBulk is the builder for creating many AdjustmentEvent entities in bulk.
type AdjustmentEventCreateBulk struct {
	config
	err      error
	builders []*AdjustmentEventCreate
}

// Save creates the AdjustmentEvent entities in the database.
func (_c *AdjustmentEventCreateBulk) Save(ctx context.Context) ([]*AdjustmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdjustmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdjustmentEventMutation)
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
func (_c *AdjustmentEventCreateBulk) SaveX(ctx context.Context) []*AdjustmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdjustmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdjustmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
