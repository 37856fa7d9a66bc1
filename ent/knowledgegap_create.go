// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
)

// KnowledgeGapCreate is the builder for creating a KnowledgeGap entity.
type KnowledgeGapCreate struct {
	config
	mutation *KnowledgeGapMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *KnowledgeGapCreate) SetUserID(v string) *KnowledgeGapCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptName sets the "concept_name" field.
func (_c *KnowledgeGapCreate) SetConceptName(v string) *KnowledgeGapCreate {
	_c.mutation.SetConceptName(v)
	return _c
}

// SetGapType sets the "gap_type" field.
func (_c *KnowledgeGapCreate) SetGapType(v string) *KnowledgeGapCreate {
	_c.mutation.SetGapType(v)
	return _c
}

// SetIdentifiedAt sets the "identified_at" field.
func (_c *KnowledgeGapCreate) SetIdentifiedAt(v time.Time) *KnowledgeGapCreate {
	_c.mutation.SetIdentifiedAt(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *KnowledgeGapCreate) SetResolvedAt(v time.Time) *KnowledgeGapCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *KnowledgeGapCreate) SetNillableResolvedAt(v *time.Time) *KnowledgeGapCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetRelatedConcepts sets the "related_concepts" field.
func (_c *KnowledgeGapCreate) SetRelatedConcepts(v []string) *KnowledgeGapCreate {
	_c.mutation.SetRelatedConcepts(v)
	return _c
}

// Mutation returns the KnowledgeGapMutation object of the builder.
func (_c *KnowledgeGapCreate) Mutation() *KnowledgeGapMutation {
	return _c.mutation
}

// Save creates the KnowledgeGap in the database.
func (_c *KnowledgeGapCreate) Save(ctx context.Context) (*KnowledgeGap, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeGapCreate) SaveX(ctx context.Context) *KnowledgeGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeGapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeGapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeGapCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "KnowledgeGap.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := knowledgegap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptName(); !ok {
		return &ValidationError{Name: "concept_name", err: errors.New(`ent: missing required field "KnowledgeGap.concept_name"`)}
	}
	if v, ok := _c.mutation.ConceptName(); ok {
		if err := knowledgegap.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.concept_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GapType(); !ok {
		return &ValidationError{Name: "gap_type", err: errors.New(`ent: missing required field "KnowledgeGap.gap_type"`)}
	}
	if v, ok := _c.mutation.GapType(); ok {
		if err := knowledgegap.GapTypeValidator(v); err != nil {
			return &ValidationError{Name: "gap_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.gap_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdentifiedAt(); !ok {
		return &ValidationError{Name: "identified_at", err: errors.New(`ent: missing required field "KnowledgeGap.identified_at"`)}
	}
	return nil
}

func (_c *KnowledgeGapCreate) sqlSave(ctx context.Context) (*KnowledgeGap, error) {
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

func (_c *KnowledgeGapCreate) createSpec() (*KnowledgeGap, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeGap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgegap.Table, sqlgraph.NewFieldSpec(knowledgegap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(knowledgegap.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptName(); ok {
		_spec.SetField(knowledgegap.FieldConceptName, field.TypeString, value)
		_node.ConceptName = value
	}
	if value, ok := _c.mutation.GapType(); ok {
		_spec.SetField(knowledgegap.FieldGapType, field.TypeString, value)
		_node.GapType = value
	}
	if value, ok := _c.mutation.IdentifiedAt(); ok {
		_spec.SetField(knowledgegap.FieldIdentifiedAt, field.TypeTime, value)
		_node.IdentifiedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(knowledgegap.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = value
	}
	if value, ok := _c.mutation.RelatedConcepts(); ok {
		_spec.SetField(knowledgegap.FieldRelatedConcepts, field.TypeJSON, value)
		_node.RelatedConcepts = value
	}
	return _node, _spec
}

// KnowledgeGapCreateBulk is the builder for creating many KnowledgeGap entities in bulk.
type KnowledgeGapCreateBulk struct {
	config
	err      error
	builders []*KnowledgeGapCreate
}

// Save creates the KnowledgeGap entities in the database.
func (_c *KnowledgeGapCreateBulk) Save(ctx context.Context) ([]*KnowledgeGap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeGap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeGapMutation)
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
func (_c *KnowledgeGapCreateBulk) SaveX(ctx context.Context) []*KnowledgeGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeGapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeGapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
