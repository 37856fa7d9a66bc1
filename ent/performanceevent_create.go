// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/performanceevent"
)

// PerformanceEventCreate is the builder for creating a PerformanceEvent entity.
type PerformanceEventCreate struct {
	config
	mutation *PerformanceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PerformanceEventCreate) SetSequence(v int64) *PerformanceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PerformanceEventCreate) SetTimestamp(v time.Time) *PerformanceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableTimestamp(v *time.Time) *PerformanceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PerformanceEventCreate) SetUserID(v string) *PerformanceEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PerformanceEventCreate) SetSessionID(v string) *PerformanceEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *PerformanceEventCreate) SetQuizID(v int) *PerformanceEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableQuizID(v *int) *PerformanceEventCreate {
	if v != nil {
		_c.SetQuizID(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *PerformanceEventCreate) SetQuestionNumber(v int) *PerformanceEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PerformanceEventCreate) SetScore(v float64) *PerformanceEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *PerformanceEventCreate) SetResponseTimeMs(v int) *PerformanceEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableResponseTimeMs(v *int) *PerformanceEventCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *PerformanceEventCreate) SetHintsUsed(v int) *PerformanceEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableHintsUsed(v *int) *PerformanceEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *PerformanceEventCreate) SetDifficultyLevel(v int) *PerformanceEventCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetConceptTested sets the "concept_tested" field.
func (_c *PerformanceEventCreate) SetConceptTested(v string) *PerformanceEventCreate {
	_c.mutation.SetConceptTested(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *PerformanceEventCreate) SetQuestionType(v string) *PerformanceEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableQuestionType(v *string) *PerformanceEventCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetInOptimalZone sets the "in_optimal_zone" field.
func (_c *PerformanceEventCreate) SetInOptimalZone(v bool) *PerformanceEventCreate {
	_c.mutation.SetInOptimalZone(v)
	return _c
}

// SetNillableInOptimalZone sets the "in_optimal_zone" field if the given value is not nil.
func (_c *PerformanceEventCreate) SetNillableInOptimalZone(v *bool) *PerformanceEventCreate {
	if v != nil {
		_c.SetInOptimalZone(*v)
	}
	return _c
}

// Mutation returns the PerformanceEventMutation object of the builder.
func (_c *PerformanceEventCreate) Mutation() *PerformanceEventMutation {
	return _c.mutation
}

// Save creates the PerformanceEvent in the database.
func (_c *PerformanceEventCreate) Save(ctx context.Context) (*PerformanceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PerformanceEventCreate) SaveX(ctx context.Context) *PerformanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PerformanceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := performanceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := performanceevent.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := performanceevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := performanceevent.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.InOptimalZone(); !ok {
		v := performanceevent.DefaultInOptimalZone
		_c.mutation.SetInOptimalZone(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PerformanceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PerformanceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PerformanceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PerformanceEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := performanceevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PerformanceEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := performanceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "PerformanceEvent.question_number"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PerformanceEvent.score"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "PerformanceEvent.response_time_ms"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "PerformanceEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "PerformanceEvent.difficulty_level"`)}
	}
	if _, ok := _c.mutation.ConceptTested(); !ok {
		return &ValidationError{Name: "concept_tested", err: errors.New(`ent: missing required field "PerformanceEvent.concept_tested"`)}
	}
	if v, ok := _c.mutation.ConceptTested(); ok {
		if err := performanceevent.ConceptTestedValidator(v); err != nil {
			return &ValidationError{Name: "concept_tested", err: fmt.Errorf(`ent: validator failed for field "PerformanceEvent.concept_tested": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "PerformanceEvent.question_type"`)}
	}
	if _, ok := _c.mutation.InOptimalZone(); !ok {
		return &ValidationError{Name: "in_optimal_zone", err: errors.New(`ent: missing required field "PerformanceEvent.in_optimal_zone"`)}
	}
	return nil
}

func (_c *PerformanceEventCreate) sqlSave(ctx context.Context) (*PerformanceEvent, error) {
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

func (_c *PerformanceEventCreate) createSpec() (*PerformanceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(performanceevent.Table, sqlgraph.NewFieldSpec(performanceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(performanceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(performanceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(performanceevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(performanceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(performanceevent.FieldQuizID, field.TypeInt, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(performanceevent.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(performanceevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(performanceevent.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(performanceevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(performanceevent.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.ConceptTested(); ok {
		_spec.SetField(performanceevent.FieldConceptTested, field.TypeString, value)
		_node.ConceptTested = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(performanceevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.InOptimalZone(); ok {
		_spec.SetField(performanceevent.FieldInOptimalZone, field.TypeBool, value)
		_node.InOptimalZone = value
	}
	return _node, _spec
}

// PerformanceEventCreateBulk is the builder for creating many PerformanceEvent entities in bulk.
type PerformanceEventCreateBulk struct {
	config
	err      error
	builders []*PerformanceEventCreate
}

// Save creates the PerformanceEvent entities in the database.
func (_c *PerformanceEventCreateBulk) Save(ctx context.Context) ([]*PerformanceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PerformanceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceEventMutation)
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
func (_c *PerformanceEventCreateBulk) SaveX(ctx context.Context) []*PerformanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PerformanceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PerformanceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
