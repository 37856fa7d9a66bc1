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
	"github.com/rahulsv/studyloop/ent/predicate"
	"github.com/rahulsv/studyloop/ent/quizresult"
	"github.com/rahulsv/studyloop/ent/schema"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v string) *QuizResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultUpdate) SetSessionID(v string) *QuizResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableSessionID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizResultUpdate) SetTopic(v string) *QuizResultUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTopic(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdate) SetTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotalQuestions(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdate) AddTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizResultUpdate) SetCorrectAnswers(v int) *QuizResultUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCorrectAnswers(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizResultUpdate) AddCorrectAnswers(v int) *QuizResultUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalMistakes sets the "total_mistakes" field.
func (_u *QuizResultUpdate) SetTotalMistakes(v int) *QuizResultUpdate {
	_u.mutation.ResetTotalMistakes()
	_u.mutation.SetTotalMistakes(v)
	return _u
}

// SetNillableTotalMistakes sets the "total_mistakes" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotalMistakes(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotalMistakes(*v)
	}
	return _u
}

// AddTotalMistakes adds value to the "total_mistakes" field.
func (_u *QuizResultUpdate) AddTotalMistakes(v int) *QuizResultUpdate {
	_u.mutation.AddTotalMistakes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizResultUpdate) SetStartedAt(v time.Time) *QuizResultUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableStartedAt(v *time.Time) *QuizResultUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizResultUpdate) SetCompletedAt(v time.Time) *QuizResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCompletedAt(v *time.Time) *QuizResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuizResultUpdate) ClearCompletedAt() *QuizResultUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetQuestionDetails sets the "question_details" field.
func (_u *QuizResultUpdate) SetQuestionDetails(v []schema.QuestionDetail) *QuizResultUpdate {
	_u.mutation.SetQuestionDetails(v)
	return _u
}

// AppendQuestionDetails appends value to the "question_details" field.
func (_u *QuizResultUpdate) AppendQuestionDetails(v []schema.QuestionDetail) *QuizResultUpdate {
	_u.mutation.AppendQuestionDetails(v)
	return _u
}

// ClearQuestionDetails clears the value of the "question_details" field.
func (_u *QuizResultUpdate) ClearQuestionDetails() *QuizResultUpdate {
	_u.mutation.ClearQuestionDetails()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizresult.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizresult.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMistakes(); ok {
		_spec.SetField(quizresult.FieldTotalMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMistakes(); ok {
		_spec.AddField(quizresult.FieldTotalMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(quizresult.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionDetails(); ok {
		_spec.SetField(quizresult.FieldQuestionDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestionDetails, value)
		})
	}
	if _u.mutation.QuestionDetailsCleared() {
		_spec.ClearField(quizresult.FieldQuestionDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v string) *QuizResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultUpdateOne) SetSessionID(v string) *QuizResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableSessionID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizResultUpdateOne) SetTopic(v string) *QuizResultUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTopic(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdateOne) SetTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotalQuestions(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdateOne) AddTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizResultUpdateOne) SetCorrectAnswers(v int) *QuizResultUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCorrectAnswers(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizResultUpdateOne) AddCorrectAnswers(v int) *QuizResultUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalMistakes sets the "total_mistakes" field.
func (_u *QuizResultUpdateOne) SetTotalMistakes(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotalMistakes()
	_u.mutation.SetTotalMistakes(v)
	return _u
}

// SetNillableTotalMistakes sets the "total_mistakes" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotalMistakes(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotalMistakes(*v)
	}
	return _u
}

// AddTotalMistakes adds value to the "total_mistakes" field.
func (_u *QuizResultUpdateOne) AddTotalMistakes(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotalMistakes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizResultUpdateOne) SetStartedAt(v time.Time) *QuizResultUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableStartedAt(v *time.Time) *QuizResultUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizResultUpdateOne) SetCompletedAt(v time.Time) *QuizResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCompletedAt(v *time.Time) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuizResultUpdateOne) ClearCompletedAt() *QuizResultUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetQuestionDetails sets the "question_details" field.
func (_u *QuizResultUpdateOne) SetQuestionDetails(v []schema.QuestionDetail) *QuizResultUpdateOne {
	_u.mutation.SetQuestionDetails(v)
	return _u
}

// AppendQuestionDetails appends value to the "question_details" field.
func (_u *QuizResultUpdateOne) AppendQuestionDetails(v []schema.QuestionDetail) *QuizResultUpdateOne {
	_u.mutation.AppendQuestionDetails(v)
	return _u
}

// ClearQuestionDetails clears the value of the "question_details" field.
func (_u *QuizResultUpdateOne) ClearQuestionDetails() *QuizResultUpdateOne {
	_u.mutation.ClearQuestionDetails()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizresult.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
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
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizresult.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMistakes(); ok {
		_spec.SetField(quizresult.FieldTotalMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMistakes(); ok {
		_spec.AddField(quizresult.FieldTotalMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(quizresult.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionDetails(); ok {
		_spec.SetField(quizresult.FieldQuestionDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestionDetails, value)
		})
	}
	if _u.mutation.QuestionDetailsCleared() {
		_spec.ClearField(quizresult.FieldQuestionDetails, field.TypeJSON)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
