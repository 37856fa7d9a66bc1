// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
)

// ConceptMasteryCreate is the builder for creating a ConceptMastery entity.
type ConceptMasteryCreate struct {
	config
	mutation *ConceptMasteryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConceptMasteryCreate) SetUserID(v string) *ConceptMasteryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptName sets the "concept_name" field.
func (_c *ConceptMasteryCreate) SetConceptName(v string) *ConceptMasteryCreate {
	_c.mutation.SetConceptName(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ConceptMasteryCreate) SetMasteryLevel(v float64) *ConceptMasteryCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableMasteryLevel(v *float64) *ConceptMasteryCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetTimesSeen sets the "times_seen" field.
func (_c *ConceptMasteryCreate) SetTimesSeen(v int) *ConceptMasteryCreate {
	_c.mutation.SetTimesSeen(v)
	return _c
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableTimesSeen(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetTimesSeen(*v)
	}
	return _c
}

// SetTimesCorrect sets the "times_correct" field.
func (_c *ConceptMasteryCreate) SetTimesCorrect(v int) *ConceptMasteryCreate {
	_c.mutation.SetTimesCorrect(v)
	return _c
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableTimesCorrect(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetTimesCorrect(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ConceptMasteryCreate) SetLastSeen(v time.Time) *ConceptMasteryCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableLastSeen(v *time.Time) *ConceptMasteryCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetKnowledgeType sets the "knowledge_type" field.
func (_c *ConceptMasteryCreate) SetKnowledgeType(v string) *ConceptMasteryCreate {
	_c.mutation.SetKnowledgeType(v)
	return _c
}

// SetNillableKnowledgeType sets the "knowledge_type" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableKnowledgeType(v *string) *ConceptMasteryCreate {
	if v != nil {
		_c.SetKnowledgeType(*v)
	}
	return _c
}

// SetAvgDifficulty sets the "avg_difficulty" field.
func (_c *ConceptMasteryCreate) SetAvgDifficulty(v float64) *ConceptMasteryCreate {
	_c.mutation.SetAvgDifficulty(v)
	return _c
}

// SetNillableAvgDifficulty sets the "avg_difficulty" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableAvgDifficulty(v *float64) *ConceptMasteryCreate {
	if v != nil {
		_c.SetAvgDifficulty(*v)
	}
	return _c
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (_c *ConceptMasteryCreate) SetMaxDifficulty(v int) *ConceptMasteryCreate {
	_c.mutation.SetMaxDifficulty(v)
	return _c
}

// SetNillableMaxDifficulty sets the "max_difficulty" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableMaxDifficulty(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetMaxDifficulty(*v)
	}
	return _c
}

// SetStruggleArea sets the "struggle_area" field.
func (_c *ConceptMasteryCreate) SetStruggleArea(v string) *ConceptMasteryCreate {
	_c.mutation.SetStruggleArea(v)
	return _c
}

// SetNillableStruggleArea sets the "struggle_area" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableStruggleArea(v *string) *ConceptMasteryCreate {
	if v != nil {
		_c.SetStruggleArea(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *ConceptMasteryCreate) SetComplexity(v int) *ConceptMasteryCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableComplexity(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_c *ConceptMasteryCreate) Mutation() *ConceptMasteryMutation {
	return _c.mutation
}

// Save creates the ConceptMastery in the database.
func (_c *ConceptMasteryCreate) Save(ctx context.Context) (*ConceptMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptMasteryCreate) SaveX(ctx context.Context) *ConceptMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptMasteryCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := conceptmastery.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		v := conceptmastery.DefaultTimesSeen
		_c.mutation.SetTimesSeen(v)
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		v := conceptmastery.DefaultTimesCorrect
		_c.mutation.SetTimesCorrect(v)
	}
	if _, ok := _c.mutation.KnowledgeType(); !ok {
		v := conceptmastery.DefaultKnowledgeType
		_c.mutation.SetKnowledgeType(v)
	}
	if _, ok := _c.mutation.AvgDifficulty(); !ok {
		v := conceptmastery.DefaultAvgDifficulty
		_c.mutation.SetAvgDifficulty(v)
	}
	if _, ok := _c.mutation.MaxDifficulty(); !ok {
		v := conceptmastery.DefaultMaxDifficulty
		_c.mutation.SetMaxDifficulty(v)
	}
	if _, ok := _c.mutation.Complexity(); !ok {
		v := conceptmastery.DefaultComplexity
		_c.mutation.SetComplexity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptMasteryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConceptMastery.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptName(); !ok {
		return &ValidationError{Name: "concept_name", err: errors.New(`ent: missing required field "ConceptMastery.concept_name"`)}
	}
	if v, ok := _c.mutation.ConceptName(); ok {
		if err := conceptmastery.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ConceptMastery.mastery_level"`)}
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		return &ValidationError{Name: "times_seen", err: errors.New(`ent: missing required field "ConceptMastery.times_seen"`)}
	}
	if _, ok := _c.mutation.TimesCorrect(); !ok {
		return &ValidationError{Name: "times_correct", err: errors.New(`ent: missing required field "ConceptMastery.times_correct"`)}
	}
	if _, ok := _c.mutation.KnowledgeType(); !ok {
		return &ValidationError{Name: "knowledge_type", err: errors.New(`ent: missing required field "ConceptMastery.knowledge_type"`)}
	}
	if _, ok := _c.mutation.AvgDifficulty(); !ok {
		return &ValidationError{Name: "avg_difficulty", err: errors.New(`ent: missing required field "ConceptMastery.avg_difficulty"`)}
	}
	if _, ok := _c.mutation.MaxDifficulty(); !ok {
		return &ValidationError{Name: "max_difficulty", err: errors.New(`ent: missing required field "ConceptMastery.max_difficulty"`)}
	}
	if _, ok := _c.mutation.Complexity(); !ok {
		return &ValidationError{Name: "complexity", err: errors.New(`ent: missing required field "ConceptMastery.complexity"`)}
	}
	if v, ok := _c.mutation.Complexity(); ok {
		if err := conceptmastery.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.complexity": %w`, err)}
		}
	}
	return nil
}

func (_c *ConceptMasteryCreate) sqlSave(ctx context.Context) (*ConceptMastery, error) {
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

func (_c *ConceptMasteryCreate) createSpec() (*ConceptMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptmastery.Table, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptName(); ok {
		_spec.SetField(conceptmastery.FieldConceptName, field.TypeString, value)
		_node.ConceptName = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.TimesSeen(); ok {
		_spec.SetField(conceptmastery.FieldTimesSeen, field.TypeInt, value)
		_node.TimesSeen = value
	}
	if value, ok := _c.mutation.TimesCorrect(); ok {
		_spec.SetField(conceptmastery.FieldTimesCorrect, field.TypeInt, value)
		_node.TimesCorrect = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(conceptmastery.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.KnowledgeType(); ok {
		_spec.SetField(conceptmastery.FieldKnowledgeType, field.TypeString, value)
		_node.KnowledgeType = value
	}
	if value, ok := _c.mutation.AvgDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldAvgDifficulty, field.TypeFloat64, value)
		_node.AvgDifficulty = value
	}
	if value, ok := _c.mutation.MaxDifficulty(); ok {
		_spec.SetField(conceptmastery.FieldMaxDifficulty, field.TypeInt, value)
		_node.MaxDifficulty = value
	}
	if value, ok := _c.mutation.StruggleArea(); ok {
		_spec.SetField(conceptmastery.FieldStruggleArea, field.TypeString, value)
		_node.StruggleArea = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(conceptmastery.FieldComplexity, field.TypeInt, value)
		_node.Complexity = value
	}
	return _node, _spec
}

// ConceptMasteryCreateBulk is the builder for creating many ConceptMastery entities in bulk.
type ConceptMasteryCreateBulk struct {
	config
	err      error
	builders []*ConceptMasteryCreate
}

// Save creates the ConceptMastery entities in the database.
func (_c *ConceptMasteryCreateBulk) Save(ctx context.Context) ([]*ConceptMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptMasteryMutation)
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
func (_c *ConceptMasteryCreateBulk) SaveX(ctx context.Context) []*ConceptMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
