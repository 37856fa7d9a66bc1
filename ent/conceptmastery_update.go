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
	"github.com/rahulsv/studyloop/ent/conceptmastery"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// ConceptMasteryUpdate is the builder for updating ConceptMastery entities.
type ConceptMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMasteryMutation
}

// Where appends a list predicates to the ConceptMasteryUpdate builder.
func (_u *ConceptMasteryUpdate) Where(ps ...predicate.ConceptMastery) *ConceptMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConceptMasteryUpdate) SetUserID(v string) *ConceptMasteryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableUserID(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *ConceptMasteryUpdate) SetConceptName(v string) *ConceptMasteryUpdate {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableConceptName(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptMasteryUpdate) SetMasteryLevel(v float64) *ConceptMasteryUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableMasteryLevel(v *float64) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptMasteryUpdate) AddMasteryLevel(v float64) *ConceptMasteryUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *ConceptMasteryUpdate) SetTimesSeen(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableTimesSeen(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *ConceptMasteryUpdate) AddTimesSeen(v int) *ConceptMasteryUpdate {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *ConceptMasteryUpdate) SetTimesCorrect(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableTimesCorrect(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *ConceptMasteryUpdate) AddTimesCorrect(v int) *ConceptMasteryUpdate {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ConceptMasteryUpdate) SetLastSeen(v time.Time) *ConceptMasteryUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableLastSeen(v *time.Time) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ConceptMasteryUpdate) ClearLastSeen() *ConceptMasteryUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// SetKnowledgeType sets the "knowledge_type" field.
func (_u *ConceptMasteryUpdate) SetKnowledgeType(v string) *ConceptMasteryUpdate {
	_u.mutation.SetKnowledgeType(v)
	return _u
}

// SetNillableKnowledgeType sets the "knowledge_type" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableKnowledgeType(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetKnowledgeType(*v)
	}
	return _u
}

// SetAvgDifficulty sets the "avg_difficulty" field.
func (_u *ConceptMasteryUpdate) SetAvgDifficulty(v float64) *ConceptMasteryUpdate {
	_u.mutation.ResetAvgDifficulty()
	_u.mutation.SetAvgDifficulty(v)
	return _u
}

// SetNillableAvgDifficulty sets the "avg_difficulty" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableAvgDifficulty(v *float64) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetAvgDifficulty(*v)
	}
	return _u
}

// AddAvgDifficulty adds value to the "avg_difficulty" field.
func (_u *ConceptMasteryUpdate) AddAvgDifficulty(v float64) *ConceptMasteryUpdate {
	_u.mutation.AddAvgDifficulty(v)
	return _u
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_u *ConceptMasteryUpdate) SetMaxDifficulty(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetMaxDifficulty()
	_u.mutation.SetMaxDifficulty(v)
	return _u
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableMaxDifficulty(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetMaxDifficulty(*v)
	}
	return _u
}

// AddMaxDifficulty adds value to the "max_difficulty" field.
func (_u *ConceptMasteryUpdate) AddMaxDifficulty(v int) *ConceptMasteryUpdate {
	_u.mutation.AddMaxDifficulty(v)
	return _u
}

// SetStruggleArea sets the "struggle_area" field.
func (_u *ConceptMasteryUpdate) SetStruggleArea(v string) *ConceptMasteryUpdate {
	_u.mutation.SetStruggleArea(v)
	return _u
}

// SetNillableStruggleArea sets the "struggle_area" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableStruggleArea(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetStruggleArea(*v)
	}
	return _u
}

// ClearStruggleArea clears the value of the "struggle_area" field.
func (_u *ConceptMasteryUpdate) ClearStruggleArea() *ConceptMasteryUpdate {
	_u.mutation.ClearStruggleArea()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *ConceptMasteryUpdate) SetComplexity(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableComplexity(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *ConceptMasteryUpdate) AddComplexity(v int) *ConceptMasteryUpdate {
	_u.mutation.AddComplexity(v)
	return _u
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_u *ConceptMasteryUpdate) Mutation() *ConceptMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptMasteryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := conceptmastery.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Complexity(); ok {
		if err := conceptmastery.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptmastery.Table, conceptmastery.Columns, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(conceptmastery.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(conceptmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(conceptmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(conceptmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(conceptmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(conceptmastery.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(conceptmastery.FieldLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.KnowledgeType(); ok {
		_spec.SetField(conceptmastery.FieldKnowledgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldAvgDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDifficulty(); ok {
		_spec.AddField(conceptmastery.FieldAvgDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDifficulty(); ok {
		_spec.AddField(conceptmastery.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StruggleArea(); ok {
		_spec.SetField(conceptmastery.FieldStruggleArea, field.TypeString, value)
	}
	if _u.mutation.StruggleAreaCleared() {
		_spec.ClearField(conceptmastery.FieldStruggleArea, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(conceptmastery.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(conceptmastery.FieldComplexity, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptMasteryUpdateOne is the builder for updating a single ConceptMastery entity.
type ConceptMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMasteryMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConceptMasteryUpdateOne) SetUserID(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableUserID(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *ConceptMasteryUpdateOne) SetConceptName(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableConceptName(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptMasteryUpdateOne) SetMasteryLevel(v float64) *ConceptMasteryUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableMasteryLevel(v *float64) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptMasteryUpdateOne) AddMasteryLevel(v float64) *ConceptMasteryUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *ConceptMasteryUpdateOne) SetTimesSeen(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableTimesSeen(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *ConceptMasteryUpdateOne) AddTimesSeen(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetTimesCorrect sets the "times_correct" field.
func (_u *ConceptMasteryUpdateOne) SetTimesCorrect(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetTimesCorrect()
	_u.mutation.SetTimesCorrect(v)
	return _u
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableTimesCorrect(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetTimesCorrect(*v)
	}
	return _u
}

// AddTimesCorrect adds value to the "times_correct" field.
func (_u *ConceptMasteryUpdateOne) AddTimesCorrect(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddTimesCorrect(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ConceptMasteryUpdateOne) SetLastSeen(v time.Time) *ConceptMasteryUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableLastSeen(v *time.Time) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ConceptMasteryUpdateOne) ClearLastSeen() *ConceptMasteryUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// SetKnowledgeType sets the "knowledge_type" field.
func (_u *ConceptMasteryUpdateOne) SetKnowledgeType(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetKnowledgeType(v)
	return _u
}

// SetNillableKnowledgeType sets the "knowledge_type" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableKnowledgeType(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetKnowledgeType(*v)
	}
	return _u
}

// SetAvgDifficulty sets the "avg_difficulty" field.
func (_u *ConceptMasteryUpdateOne) SetAvgDifficulty(v float64) *ConceptMasteryUpdateOne {
	_u.mutation.ResetAvgDifficulty()
	_u.mutation.SetAvgDifficulty(v)
	return _u
}

// SetNillableAvgDifficulty sets the "avg_difficulty" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableAvgDifficulty(v *float64) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetAvgDifficulty(*v)
	}
	return _u
}

// AddAvgDifficulty adds value to the "avg_difficulty" field.
func (_u *ConceptMasteryUpdateOne) AddAvgDifficulty(v float64) *ConceptMasteryUpdateOne {
	_u.mutation.AddAvgDifficulty(v)
	return _u
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_u *ConceptMasteryUpdateOne) SetMaxDifficulty(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetMaxDifficulty()
	_u.mutation.SetMaxDifficulty(v)
	return _u
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableMaxDifficulty(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetMaxDifficulty(*v)
	}
	return _u
}

// AddMaxDifficulty adds value to the "max_difficulty" field.
func (_u *ConceptMasteryUpdateOne) AddMaxDifficulty(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddMaxDifficulty(v)
	return _u
}

// SetStruggleArea sets the "struggle_area" field.
func (_u *ConceptMasteryUpdateOne) SetStruggleArea(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetStruggleArea(v)
	return _u
}

// SetNillableStruggleArea sets the "struggle_area" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableStruggleArea(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetStruggleArea(*v)
	}
	return _u
}

// ClearStruggleArea clears the value of the "struggle_area" field.
func (_u *ConceptMasteryUpdateOne) ClearStruggleArea() *ConceptMasteryUpdateOne {
	_u.mutation.ClearStruggleArea()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *ConceptMasteryUpdateOne) SetComplexity(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableComplexity(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *ConceptMasteryUpdateOne) AddComplexity(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddComplexity(v)
	return _u
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_u *ConceptMasteryUpdateOne) Mutation() *ConceptMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptMasteryUpdate builder.
func (_u *ConceptMasteryUpdateOne) Where(ps ...predicate.ConceptMastery) *ConceptMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptMasteryUpdateOne) Select(field string, fields ...string) *ConceptMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptMastery entity.
func (_u *ConceptMasteryUpdateOne) Save(ctx context.Context) (*ConceptMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptMasteryUpdateOne) SaveX(ctx context.Context) *ConceptMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := conceptmastery.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Complexity(); ok {
		if err := conceptmastery.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptMasteryUpdateOne) sqlSave(ctx context.Context) (_node *ConceptMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptmastery.Table, conceptmastery.Columns, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptmastery.FieldID)
		for _, f := range fields {
			if !conceptmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptmastery.FieldID {
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
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(conceptmastery.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptmastery.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(conceptmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(conceptmastery.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesCorrect(); ok {
		_spec.SetField(conceptmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(conceptmastery.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(conceptmastery.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(conceptmastery.FieldLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.KnowledgeType(); ok {
		_spec.SetField(conceptmastery.FieldKnowledgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldAvgDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDifficulty(); ok {
		_spec.AddField(conceptmastery.FieldAvgDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDifficulty(); ok {
		_spec.AddField(conceptmastery.FieldMaxDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StruggleArea(); ok {
		_spec.SetField(conceptmastery.FieldStruggleArea, field.TypeString, value)
	}
	if _u.mutation.StruggleAreaCleared() {
		_spec.ClearField(conceptmastery.FieldStruggleArea, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(conceptmastery.FieldComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(conceptmastery.FieldComplexity, field.TypeInt, value)
	}
	_node = &ConceptMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
