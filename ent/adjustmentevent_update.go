// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// AdjustmentEventUpdate is the builder for updating AdjustmentEvent entities.
type AdjustmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdjustmentEventMutation
}

// Where appends a list predicates to the AdjustmentEventUpdate builder.
func (_u *AdjustmentEventUpdate) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdjustmentEventUpdate) SetUserID(v string) *AdjustmentEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableUserID(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AdjustmentEventUpdate) SetSessionID(v string) *AdjustmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableSessionID(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPreviousLevel sets the "previous_level" field.
func (_u *AdjustmentEventUpdate) SetPreviousLevel(v int) *AdjustmentEventUpdate {
	_u.mutation.ResetPreviousLevel()
	_u.mutation.SetPreviousLevel(v)
	return _u
}

// SetNillablePreviousLevel sets the "previous_level" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillablePreviousLevel(v *int) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetPreviousLevel(*v)
	}
	return _u
}

// AddPreviousLevel adds value to the "previous_level" field.
func (_u *AdjustmentEventUpdate) AddPreviousLevel(v int) *AdjustmentEventUpdate {
	_u.mutation.AddPreviousLevel(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *AdjustmentEventUpdate) SetNewLevel(v int) *AdjustmentEventUpdate {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableNewLevel(v *int) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *AdjustmentEventUpdate) AddNewLevel(v int) *AdjustmentEventUpdate {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdjustmentEventUpdate) SetAdjustmentType(v string) *AdjustmentEventUpdate {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableAdjustmentType(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdjustmentEventUpdate) SetReason(v string) *AdjustmentEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableReason(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *AdjustmentEventUpdate) SetTriggeredBy(v string) *AdjustmentEventUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableTriggeredBy(v *string) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetScaffoldingRecommended sets the "scaffolding_recommended" field.
func (_u *AdjustmentEventUpdate) SetScaffoldingRecommended(v bool) *AdjustmentEventUpdate {
	_u.mutation.SetScaffoldingRecommended(v)
	return _u
}

// SetNillableScaffoldingRecommended sets the "scaffolding_recommended" field if the given value is not nil.
func (_u *AdjustmentEventUpdate) SetNillableScaffoldingRecommended(v *bool) *AdjustmentEventUpdate {
	if v != nil {
		_u.SetScaffoldingRecommended(*v)
	}
	return _u
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_u *AdjustmentEventUpdate) Mutation() *AdjustmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdjustmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdjustmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdjustmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdjustmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdjustmentEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := adjustmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adjustmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := adjustmentevent.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.triggered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AdjustmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adjustmentevent.Table, adjustmentevent.Columns, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adjustmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adjustmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousLevel(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousLevel(); ok {
		_spec.AddField(adjustmentevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(adjustmentevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(adjustmentevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adjustmentevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(adjustmentevent.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScaffoldingRecommended(); ok {
		_spec.SetField(adjustmentevent.FieldScaffoldingRecommended, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adjustmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdjustmentEventUpdateOne is the builder for updating a single AdjustmentEvent entity.
type AdjustmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdjustmentEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AdjustmentEventUpdateOne) SetUserID(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableUserID(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AdjustmentEventUpdateOne) SetSessionID(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableSessionID(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPreviousLevel sets the "previous_level" field.
func (_u *AdjustmentEventUpdateOne) SetPreviousLevel(v int) *AdjustmentEventUpdateOne {
	_u.mutation.ResetPreviousLevel()
	_u.mutation.SetPreviousLevel(v)
	return _u
}

// SetNillablePreviousLevel sets the "previous_level" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillablePreviousLevel(v *int) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetPreviousLevel(*v)
	}
	return _u
}

// AddPreviousLevel adds value to the "previous_level" field.
func (_u *AdjustmentEventUpdateOne) AddPreviousLevel(v int) *AdjustmentEventUpdateOne {
	_u.mutation.AddPreviousLevel(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *AdjustmentEventUpdateOne) SetNewLevel(v int) *AdjustmentEventUpdateOne {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableNewLevel(v *int) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *AdjustmentEventUpdateOne) AddNewLevel(v int) *AdjustmentEventUpdateOne {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *AdjustmentEventUpdateOne) SetAdjustmentType(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableAdjustmentType(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdjustmentEventUpdateOne) SetReason(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableReason(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *AdjustmentEventUpdateOne) SetTriggeredBy(v string) *AdjustmentEventUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableTriggeredBy(v *string) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetScaffoldingRecommended sets the "scaffolding_recommended" field.
func (_u *AdjustmentEventUpdateOne) SetScaffoldingRecommended(v bool) *AdjustmentEventUpdateOne {
	_u.mutation.SetScaffoldingRecommended(v)
	return _u
}

// SetNillableScaffoldingRecommended sets the "scaffolding_recommended" field if the given value is not nil.
func (_u *AdjustmentEventUpdateOne) SetNillableScaffoldingRecommended(v *bool) *AdjustmentEventUpdateOne {
	if v != nil {
		_u.SetScaffoldingRecommended(*v)
	}
	return _u
}

// Mutation returns the AdjustmentEventMutation object of the builder.
func (_u *AdjustmentEventUpdateOne) Mutation() *AdjustmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdjustmentEventUpdate builder.
func (_u *AdjustmentEventUpdateOne) Where(ps ...predicate.AdjustmentEvent) *AdjustmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdjustmentEventUpdateOne) Select(field string, fields ...string) *AdjustmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdjustmentEvent entity.
func (_u *AdjustmentEventUpdateOne) Save(ctx context.Context) (*AdjustmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdjustmentEventUpdateOne) SaveX(ctx context.Context) *AdjustmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdjustmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdjustmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdjustmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := adjustmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adjustmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := adjustmentevent.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.adjustment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := adjustmentevent.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "AdjustmentEvent.triggered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AdjustmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AdjustmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adjustmentevent.Table, adjustmentevent.Columns, sqlgraph.NewFieldSpec(adjustmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdjustmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adjustmentevent.FieldID)
		for _, f := range fields {
			if !adjustmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adjustmentevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adjustmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adjustmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousLevel(); ok {
		_spec.SetField(adjustmentevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousLevel(); ok {
		_spec.AddField(adjustmentevent.FieldPreviousLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(adjustmentevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(adjustmentevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(adjustmentevent.FieldAdjustmentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adjustmentevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(adjustmentevent.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScaffoldingRecommended(); ok {
		_spec.SetField(adjustmentevent.FieldScaffoldingRecommended, field.TypeBool, value)
	}
	_node = &AdjustmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adjustmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
