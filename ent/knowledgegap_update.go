// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// KnowledgeGapUpdate is the builder for updating KnowledgeGap entities.
type KnowledgeGapUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeGapMutation
}

// Where appends a list predicates to the KnowledgeGapUpdate builder.
func (_u *KnowledgeGapUpdate) Where(ps ...predicate.KnowledgeGap) *KnowledgeGapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *KnowledgeGapUpdate) SetUserID(v string) *KnowledgeGapUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *KnowledgeGapUpdate) SetNillableUserID(v *string) *KnowledgeGapUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *KnowledgeGapUpdate) SetConceptName(v string) *KnowledgeGapUpdate {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *KnowledgeGapUpdate) SetNillableConceptName(v *string) *KnowledgeGapUpdate {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetGapType sets the "gap_type" field.
func (_u *KnowledgeGapUpdate) SetGapType(v string) *KnowledgeGapUpdate {
	_u.mutation.SetGapType(v)
	return _u
}

// SetNillableGapType sets the "gap_type" field if the given value is not nil.
func (_u *KnowledgeGapUpdate) SetNillableGapType(v *string) *KnowledgeGapUpdate {
	if v != nil {
		_u.SetGapType(*v)
	}
	return _u
}

// SetIdentifiedAt sets the "identified_at" field.
func (_u *KnowledgeGapUpdate) SetIdentifiedAt(v time.Time) *KnowledgeGapUpdate {
	_u.mutation.SetIdentifiedAt(v)
	return _u
}

// SetNillableIdentifiedAt sets the "identified_at" field if the given value is not nil.
func (_u *KnowledgeGapUpdate) SetNillableIdentifiedAt(v *time.Time) *KnowledgeGapUpdate {
	if v != nil {
		_u.SetIdentifiedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *KnowledgeGapUpdate) SetResolvedAt(v time.Time) *KnowledgeGapUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *KnowledgeGapUpdate) SetNillableResolvedAt(v *time.Time) *KnowledgeGapUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *KnowledgeGapUpdate) ClearResolvedAt() *KnowledgeGapUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRelatedConcepts sets the "related_concepts" field.
func (_u *KnowledgeGapUpdate) SetRelatedConcepts(v []string) *KnowledgeGapUpdate {
	_u.mutation.SetRelatedConcepts(v)
	return _u
}

// AppendRelatedConcepts appends value to the "related_concepts" field.
func (_u *KnowledgeGapUpdate) AppendRelatedConcepts(v []string) *KnowledgeGapUpdate {
	_u.mutation.AppendRelatedConcepts(v)
	return _u
}

// ClearRelatedConcepts clears the value of the "related_concepts" field.
func (_u *KnowledgeGapUpdate) ClearRelatedConcepts() *KnowledgeGapUpdate {
	_u.mutation.ClearRelatedConcepts()
	return _u
}

// Mutation returns the KnowledgeGapMutation object of the builder.
func (_u *KnowledgeGapUpdate) Mutation() *KnowledgeGapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeGapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeGapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeGapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeGapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeGapUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := knowledgegap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := knowledgegap.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GapType(); ok {
		if err := knowledgegap.GapTypeValidator(v); err != nil {
			return &ValidationError{Name: "gap_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.gap_type": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeGapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgegap.Table, knowledgegap.Columns, sqlgraph.NewFieldSpec(knowledgegap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(knowledgegap.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(knowledgegap.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapType(); ok {
		_spec.SetField(knowledgegap.FieldGapType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifiedAt(); ok {
		_spec.SetField(knowledgegap.FieldIdentifiedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(knowledgegap.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(knowledgegap.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RelatedConcepts(); ok {
		_spec.SetField(knowledgegap.FieldRelatedConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgegap.FieldRelatedConcepts, value)
		})
	}
	if _u.mutation.RelatedConceptsCleared() {
		_spec.ClearField(knowledgegap.FieldRelatedConcepts, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgegap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeGapUpdateOne is the builder for updating a single KnowledgeGap entity.
type KnowledgeGapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeGapMutation
}

// SetUserID sets the "user_id" field.
func (_u *KnowledgeGapUpdateOne) SetUserID(v string) *KnowledgeGapUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *KnowledgeGapUpdateOne) SetNillableUserID(v *string) *KnowledgeGapUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptName sets the "concept_name" field.
func (_u *KnowledgeGapUpdateOne) SetConceptName(v string) *KnowledgeGapUpdateOne {
	_u.mutation.SetConceptName(v)
	return _u
}

// SetNillableConceptName sets the "concept_name" field if the given value is not nil.
func (_u *KnowledgeGapUpdateOne) SetNillableConceptName(v *string) *KnowledgeGapUpdateOne {
	if v != nil {
		_u.SetConceptName(*v)
	}
	return _u
}

// SetGapType sets the "gap_type" field.
func (_u *KnowledgeGapUpdateOne) SetGapType(v string) *KnowledgeGapUpdateOne {
	_u.mutation.SetGapType(v)
	return _u
}

// SetNillableGapType sets the "gap_type" field if the given value is not nil.
func (_u *KnowledgeGapUpdateOne) SetNillableGapType(v *string) *KnowledgeGapUpdateOne {
	if v != nil {
		_u.SetGapType(*v)
	}
	return _u
}

// SetIdentifiedAt sets the "identified_at" field.
func (_u *KnowledgeGapUpdateOne) SetIdentifiedAt(v time.Time) *KnowledgeGapUpdateOne {
	_u.mutation.SetIdentifiedAt(v)
	return _u
}

// SetNillableIdentifiedAt sets the "identified_at" field if the given value is not nil.
func (_u *KnowledgeGapUpdateOne) SetNillableIdentifiedAt(v *time.Time) *KnowledgeGapUpdateOne {
	if v != nil {
		_u.SetIdentifiedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *KnowledgeGapUpdateOne) SetResolvedAt(v time.Time) *KnowledgeGapUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *KnowledgeGapUpdateOne) SetNillableResolvedAt(v *time.Time) *KnowledgeGapUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *KnowledgeGapUpdateOne) ClearResolvedAt() *KnowledgeGapUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRelatedConcepts sets the "related_concepts" field.
func (_u *KnowledgeGapUpdateOne) SetRelatedConcepts(v []string) *KnowledgeGapUpdateOne {
	_u.mutation.SetRelatedConcepts(v)
	return _u
}

// AppendRelatedConcepts appends value to the "related_concepts" field.
func (_u *KnowledgeGapUpdateOne) AppendRelatedConcepts(v []string) *KnowledgeGapUpdateOne {
	_u.mutation.AppendRelatedConcepts(v)
	return _u
}

// ClearRelatedConcepts clears the value of the "related_concepts" field.
func (_u *KnowledgeGapUpdateOne) ClearRelatedConcepts() *KnowledgeGapUpdateOne {
	_u.mutation.ClearRelatedConcepts()
	return _u
}

// Mutation returns the KnowledgeGapMutation object of the builder.
func (_u *KnowledgeGapUpdateOne) Mutation() *KnowledgeGapMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeGapUpdate builder.
func (_u *KnowledgeGapUpdateOne) Where(ps ...predicate.KnowledgeGap) *KnowledgeGapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeGapUpdateOne) Select(field string, fields ...string) *KnowledgeGapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeGap entity.
func (_u *KnowledgeGapUpdateOne) Save(ctx context.Context) (*KnowledgeGap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeGapUpdateOne) SaveX(ctx context.Context) *KnowledgeGap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeGapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeGapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeGapUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := knowledgegap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptName(); ok {
		if err := knowledgegap.ConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "concept_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GapType(); ok {
		if err := knowledgegap.GapTypeValidator(v); err != nil {
			return &ValidationError{Name: "gap_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeGap.gap_type": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeGapUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeGap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgegap.Table, knowledgegap.Columns, sqlgraph.NewFieldSpec(knowledgegap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeGap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgegap.FieldID)
		for _, f := range fields {
			if !knowledgegap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgegap.FieldID {
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
		_spec.SetField(knowledgegap.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptName(); ok {
		_spec.SetField(knowledgegap.FieldConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapType(); ok {
		_spec.SetField(knowledgegap.FieldGapType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentifiedAt(); ok {
		_spec.SetField(knowledgegap.FieldIdentifiedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(knowledgegap.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(knowledgegap.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RelatedConcepts(); ok {
		_spec.SetField(knowledgegap.FieldRelatedConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgegap.FieldRelatedConcepts, value)
		})
	}
	if _u.mutation.RelatedConceptsCleared() {
		_spec.ClearField(knowledgegap.FieldRelatedConcepts, field.TypeJSON)
	}
	_node = &KnowledgeGap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgegap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
