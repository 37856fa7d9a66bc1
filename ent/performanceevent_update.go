// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/performanceevent"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// PerformanceEventUpdate is the builder for updating PerformanceEvent entities.
type PerformanceEventUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceEventMutation
}

// Where appends a list predicates to the PerformanceEventUpdate builder.
func (_u *PerformanceEventUpdate) Where(ps ...predicate.PerformanceEvent) *PerformanceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PerformanceEventUpdate) SetUserID(v string) *PerformanceEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableUserID(v *string) *PerformanceEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PerformanceEventUpdate) SetSessionID(v string) *PerformanceEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableSessionID(v *string) *PerformanceEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *PerformanceEventUpdate) SetQuizID(v int) *PerformanceEventUpdate {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableQuizID(v *int) *PerformanceEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *PerformanceEventUpdate) AddQuizID(v int) *PerformanceEventUpdate {
	_u.mutation.AddQuizID(v)
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *PerformanceEventUpdate) ClearQuizID() *PerformanceEventUpdate {
	_u.mutation.ClearQuizID()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *PerformanceEventUpdate) SetQuestionNumber(v int) *PerformanceEventUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableQuestionNumber(v *int) *PerformanceEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *PerformanceEventUpdate) AddQuestionNumber(v int) *PerformanceEventUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PerformanceEventUpdate) SetScore(v float64) *PerformanceEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableScore(v *float64) *PerformanceEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PerformanceEventUpdate) AddScore(v float64) *PerformanceEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PerformanceEventUpdate) SetResponseTimeMs(v int) *PerformanceEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableResponseTimeMs(v *int) *PerformanceEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PerformanceEventUpdate) AddResponseTimeMs(v int) *PerformanceEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PerformanceEventUpdate) SetHintsUsed(v int) *PerformanceEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableHintsUsed(v *int) *PerformanceEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PerformanceEventUpdate) AddHintsUsed(v int) *PerformanceEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PerformanceEventUpdate) SetDifficultyLevel(v int) *PerformanceEventUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableDifficultyLevel(v *int) *PerformanceEventUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PerformanceEventUpdate) AddDifficultyLevel(v int) *PerformanceEventUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetConceptTested sets the "concept_tested" field.
func (_u *PerformanceEventUpdate) SetConceptTested(v string) *PerformanceEventUpdate {
	_u.mutation.SetConceptTested(v)
	return _u
}

// SetNillableConceptTested sets the "concept_tested" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableConceptTested(v *string) *PerformanceEventUpdate {
	if v != nil {
		_u.SetConceptTested(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PerformanceEventUpdate) SetQuestionType(v string) *PerformanceEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableQuestionType(v *string) *PerformanceEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetInOptimalZone sets the "in_optimal_zone" field.
func (_u *PerformanceEventUpdate) SetInOptimalZone(v bool) *PerformanceEventUpdate {
	_u.mutation.SetInOptimalZone(v)
	return _u
}

// SetNillableInOptimalZone sets the "in_optimal_zone" field if the given value is not nil.
func (_u *PerformanceEventUpdate) SetNillableInOptimalZone(v *bool) *PerformanceEventUpdate {
	if v != nil {
		_u.SetInOptimalZone(*v)
	}
	return _u
}

// Mutation returns the PerformanceEventMutation object of the builder.
func (_u *PerformanceEventUpdate) Mutation() *PerformanceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := performanceevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := performanceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptTested(); ok {
		if err := performanceevent.ConceptTestedValidator(v); err != nil {
			return &ValidationError{Name: "concept_tested", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.concept_tested": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performanceevent.Table, performanceevent.Columns, sqlgraph.NewFieldSpec(performanceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(performanceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(performanceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(performanceevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(performanceevent.FieldQuizID, field.TypeInt, value)
	}
	if _u.mutation.QuizIDCleared() {
		_spec.ClearField(performanceevent.FieldQuizID, field.TypeInt)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(performanceevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(performanceevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(performanceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(performanceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performanceevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(performanceevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(performanceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(performanceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(performanceevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(performanceevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTested(); ok {
		_spec.SetField(performanceevent.FieldConceptTested, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(performanceevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InOptimalZone(); ok {
		_spec.SetField(performanceevent.FieldInOptimalZone, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceEventUpdateOne is the builder for updating a single PerformanceEvent entity.
type PerformanceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *PerformanceEventUpdateOne) SetUserID(v string) *PerformanceEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableUserID(v *string) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PerformanceEventUpdateOne) SetSessionID(v string) *PerformanceEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableSessionID(v *string) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *PerformanceEventUpdateOne) SetQuizID(v int) *PerformanceEventUpdateOne {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableQuizID(v *int) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *PerformanceEventUpdateOne) AddQuizID(v int) *PerformanceEventUpdateOne {
	_u.mutation.AddQuizID(v)
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *PerformanceEventUpdateOne) ClearQuizID() *PerformanceEventUpdateOne {
	_u.mutation.ClearQuizID()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *PerformanceEventUpdateOne) SetQuestionNumber(v int) *PerformanceEventUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableQuestionNumber(v *int) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *PerformanceEventUpdateOne) AddQuestionNumber(v int) *PerformanceEventUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PerformanceEventUpdateOne) SetScore(v float64) *PerformanceEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableScore(v *float64) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PerformanceEventUpdateOne) AddScore(v float64) *PerformanceEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PerformanceEventUpdateOne) SetResponseTimeMs(v int) *PerformanceEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableResponseTimeMs(v *int) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PerformanceEventUpdateOne) AddResponseTimeMs(v int) *PerformanceEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PerformanceEventUpdateOne) SetHintsUsed(v int) *PerformanceEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableHintsUsed(v *int) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PerformanceEventUpdateOne) AddHintsUsed(v int) *PerformanceEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PerformanceEventUpdateOne) SetDifficultyLevel(v int) *PerformanceEventUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableDifficultyLevel(v *int) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PerformanceEventUpdateOne) AddDifficultyLevel(v int) *PerformanceEventUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetConceptTested sets the "concept_tested" field.
func (_u *PerformanceEventUpdateOne) SetConceptTested(v string) *PerformanceEventUpdateOne {
	_u.mutation.SetConceptTested(v)
	return _u
}

// SetNillableConceptTested sets the "concept_tested" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableConceptTested(v *string) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetConceptTested(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PerformanceEventUpdateOne) SetQuestionType(v string) *PerformanceEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableQuestionType(v *string) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetInOptimalZone sets the "in_optimal_zone" field.
func (_u *PerformanceEventUpdateOne) SetInOptimalZone(v bool) *PerformanceEventUpdateOne {
	_u.mutation.SetInOptimalZone(v)
	return _u
}

// SetNillableInOptimalZone sets the "in_optimal_zone" field if the given value is not nil.
func (_u *PerformanceEventUpdateOne) SetNillableInOptimalZone(v *bool) *PerformanceEventUpdateOne {
	if v != nil {
		_u.SetInOptimalZone(*v)
	}
	return _u
}

// Mutation returns the PerformanceEventMutation object of the builder.
func (_u *PerformanceEventUpdateOne) Mutation() *PerformanceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceEventUpdate builder.
func (_u *PerformanceEventUpdateOne) Where(ps ...predicate.PerformanceEvent) *PerformanceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceEventUpdateOne) Select(field string, fields ...string) *PerformanceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceEvent entity.
func (_u *PerformanceEventUpdateOne) Save(ctx context.Context) (*PerformanceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceEventUpdateOne) SaveX(ctx context.Context) *PerformanceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := performanceevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := performanceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptTested(); ok {
		if err := performanceevent.ConceptTestedValidator(v); err != nil {
			return &ValidationError{Name: "concept_tested", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.concept_tested": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceEventUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performanceevent.Table, performanceevent.Columns, sqlgraph.NewFieldSpec(performanceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performanceevent.FieldID)
		for _, f := range fields {
			if !performanceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performanceevent.FieldID {
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
		_spec.SetField(performanceevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(performanceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(performanceevent.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(performanceevent.FieldQuizID, field.TypeInt, value)
	}
	if _u.mutation.QuizIDCleared() {
		_spec.ClearField(performanceevent.FieldQuizID, field.TypeInt)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(performanceevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(performanceevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(performanceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(performanceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performanceevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(performanceevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(performanceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(performanceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(performanceevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(performanceevent.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTested(); ok {
		_spec.SetField(performanceevent.FieldConceptTested, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(performanceevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InOptimalZone(); ok {
		_spec.SetField(performanceevent.FieldInOptimalZone, field.TypeBool, value)
	}
	_node = &PerformanceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
