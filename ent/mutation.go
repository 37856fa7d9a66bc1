// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
	"github.com/rahulsv/studyloop/ent/llmrequestevent"
	"github.com/rahulsv/studyloop/ent/performanceevent"
	"github.com/rahulsv/studyloop/ent/predicate"
	"github.com/rahulsv/studyloop/ent/quizresult"
	"github.com/rahulsv/studyloop/ent/schema"
	"github.com/rahulsv/studyloop/ent/sessionsnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdjustmentEvent  = "AdjustmentEvent"
	TypeConceptMastery   = "ConceptMastery"
	TypeKnowledgeGap     = "KnowledgeGap"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypePerformanceEvent = "PerformanceEvent"
	TypeQuizResult       = "QuizResult"
	TypeSessionSnapshot  = "SessionSnapshot"
)

// AdjustmentEventMutation represents an operation that mutates the AdjustmentEvent nodes in the graph.
type AdjustmentEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	user_id                 *string
	session_id              *string
	previous_level          *int
	addprevious_level       *int
	new_level               *int
	addnew_level            *int
	adjustment_type         *string
	reason                  *string
	triggered_by            *string
	scaffolding_recommended *bool
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AdjustmentEvent, error)
	predicates              []predicate.AdjustmentEvent
}

var _ ent.Mutation = (*AdjustmentEventMutation)(nil)

// adjustmenteventOption allows management of the mutation configuration using functional options.
type adjustmenteventOption func(*AdjustmentEventMutation)

// newAdjustmentEventMutation creates new mutation for the AdjustmentEvent entity.
func newAdjustmentEventMutation(c config, op Op, opts ...adjustmenteventOption) *AdjustmentEventMutation {
	m := &AdjustmentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdjustmentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdjustmentEventID sets the ID field of the mutation.
func withAdjustmentEventID(id int) adjustmenteventOption {
	return func(m *AdjustmentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdjustmentEvent
		)
		m.oldValue = func(ctx context.Context) (*AdjustmentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdjustmentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdjustmentEvent sets the old AdjustmentEvent of the mutation.
func withAdjustmentEvent(node *AdjustmentEvent) adjustmenteventOption {
	return func(m *AdjustmentEventMutation) {
		m.oldValue = func(context.Context) (*AdjustmentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdjustmentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdjustmentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdjustmentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdjustmentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdjustmentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdjustmentEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdjustmentEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdjustmentEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdjustmentEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdjustmentEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AdjustmentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AdjustmentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AdjustmentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *AdjustmentEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AdjustmentEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AdjustmentEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *AdjustmentEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AdjustmentEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AdjustmentEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetPreviousLevel sets the "previous_level" field.
func (m *AdjustmentEventMutation) SetPreviousLevel(i int) {
	m.previous_level = &i
	m.addprevious_level = nil
}

// PreviousLevel returns the value of the "previous_level" field in the mutation.
func (m *AdjustmentEventMutation) PreviousLevel() (r int, exists bool) {
	v := m.previous_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousLevel returns the old "previous_level" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldPreviousLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousLevel: %w", err)
	}
	return oldValue.PreviousLevel, nil
}

// AddPreviousLevel adds i to the "previous_level" field.
func (m *AdjustmentEventMutation) AddPreviousLevel(i int) {
	if m.addprevious_level != nil {
		*m.addprevious_level += i
	} else {
		m.addprevious_level = &i
	}
}

// AddedPreviousLevel returns the value that was added to the "previous_level" field in this mutation.
func (m *AdjustmentEventMutation) AddedPreviousLevel() (r int, exists bool) {
	v := m.addprevious_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousLevel resets all changes to the "previous_level" field.
func (m *AdjustmentEventMutation) ResetPreviousLevel() {
	m.previous_level = nil
	m.addprevious_level = nil
}

// SetNewLevel sets the "new_level" field.
func (m *AdjustmentEventMutation) SetNewLevel(i int) {
	m.new_level = &i
	m.addnew_level = nil
}

// NewLevel returns the value of the "new_level" field in the mutation.
func (m *AdjustmentEventMutation) NewLevel() (r int, exists bool) {
	v := m.new_level
	if v == nil {
		return
	}
	return *v, true
}

// OldNewLevel returns the old "new_level" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldNewLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewLevel: %w", err)
	}
	return oldValue.NewLevel, nil
}

// AddNewLevel adds i to the "new_level" field.
func (m *AdjustmentEventMutation) AddNewLevel(i int) {
	if m.addnew_level != nil {
		*m.addnew_level += i
	} else {
		m.addnew_level = &i
	}
}

// AddedNewLevel returns the value that was added to the "new_level" field in this mutation.
func (m *AdjustmentEventMutation) AddedNewLevel() (r int, exists bool) {
	v := m.addnew_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewLevel resets all changes to the "new_level" field.
func (m *AdjustmentEventMutation) ResetNewLevel() {
	m.new_level = nil
	m.addnew_level = nil
}

// SetAdjustmentType sets the "adjustment_type" field.
func (m *AdjustmentEventMutation) SetAdjustmentType(s string) {
	m.adjustment_type = &s
}

// AdjustmentType returns the value of the "adjustment_type" field in the mutation.
func (m *AdjustmentEventMutation) AdjustmentType() (r string, exists bool) {
	v := m.adjustment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustmentType returns the old "adjustment_type" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldAdjustmentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustmentType: %w", err)
	}
	return oldValue.AdjustmentType, nil
}

// ResetAdjustmentType resets all changes to the "adjustment_type" field.
func (m *AdjustmentEventMutation) ResetAdjustmentType() {
	m.adjustment_type = nil
}

// SetReason sets the "reason" field.
func (m *AdjustmentEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AdjustmentEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AdjustmentEventMutation) ResetReason() {
	m.reason = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *AdjustmentEventMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *AdjustmentEventMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *AdjustmentEventMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetScaffoldingRecommended sets the "scaffolding_recommended" field.
func (m *AdjustmentEventMutation) SetScaffoldingRecommended(b bool) {
	m.scaffolding_recommended = &b
}

// ScaffoldingRecommended returns the value of the "scaffolding_recommended" field in the mutation.
func (m *AdjustmentEventMutation) ScaffoldingRecommended() (r bool, exists bool) {
	v := m.scaffolding_recommended
	if v == nil {
		return
	}
	return *v, true
}

// OldScaffoldingRecommended returns the old "scaffolding_recommended" field's value of the AdjustmentEvent entity.
// If the AdjustmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdjustmentEventMutation) OldScaffoldingRecommended(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScaffoldingRecommended is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScaffoldingRecommended requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScaffoldingRecommended: %w", err)
	}
	return oldValue.ScaffoldingRecommended, nil
}

// ResetScaffoldingRecommended resets all changes to the "scaffolding_recommended" field.
func (m *AdjustmentEventMutation) ResetScaffoldingRecommended() {
	m.scaffolding_recommended = nil
}

// Where appends a list predicates to the AdjustmentEventMutation builder.
func (m *AdjustmentEventMutation) Where(ps ...predicate.AdjustmentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdjustmentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdjustmentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdjustmentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdjustmentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdjustmentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdjustmentEvent).
func (m *AdjustmentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdjustmentEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, adjustmentevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, adjustmentevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, adjustmentevent.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, adjustmentevent.FieldSessionID)
	}
	if m.previous_level != nil {
		fields = append(fields, adjustmentevent.FieldPreviousLevel)
	}
	if m.new_level != nil {
		fields = append(fields, adjustmentevent.FieldNewLevel)
	}
	if m.adjustment_type != nil {
		fields = append(fields, adjustmentevent.FieldAdjustmentType)
	}
	if m.reason != nil {
		fields = append(fields, adjustmentevent.FieldReason)
	}
	if m.triggered_by != nil {
		fields = append(fields, adjustmentevent.FieldTriggeredBy)
	}
	if m.scaffolding_recommended != nil {
		fields = append(fields, adjustmentevent.FieldScaffoldingRecommended)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdjustmentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adjustmentevent.FieldSequence:
		return m.Sequence()
	case adjustmentevent.FieldTimestamp:
		return m.Timestamp()
	case adjustmentevent.FieldUserID:
		return m.UserID()
	case adjustmentevent.FieldSessionID:
		return m.SessionID()
	case adjustmentevent.FieldPreviousLevel:
		return m.PreviousLevel()
	case adjustmentevent.FieldNewLevel:
		return m.NewLevel()
	case adjustmentevent.FieldAdjustmentType:
		return m.AdjustmentType()
	case adjustmentevent.FieldReason:
		return m.Reason()
	case adjustmentevent.FieldTriggeredBy:
		return m.TriggeredBy()
	case adjustmentevent.FieldScaffoldingRecommended:
		return m.ScaffoldingRecommended()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdjustmentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adjustmentevent.FieldSequence:
		return m.OldSequence(ctx)
	case adjustmentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case adjustmentevent.FieldUserID:
		return m.OldUserID(ctx)
	case adjustmentevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case adjustmentevent.FieldPreviousLevel:
		return m.OldPreviousLevel(ctx)
	case adjustmentevent.FieldNewLevel:
		return m.OldNewLevel(ctx)
	case adjustmentevent.FieldAdjustmentType:
		return m.OldAdjustmentType(ctx)
	case adjustmentevent.FieldReason:
		return m.OldReason(ctx)
	case adjustmentevent.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case adjustmentevent.FieldScaffoldingRecommended:
		return m.OldScaffoldingRecommended(ctx)
	}
	return nil, fmt.Errorf("unknown AdjustmentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdjustmentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adjustmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case adjustmentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case adjustmentevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case adjustmentevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case adjustmentevent.FieldPreviousLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousLevel(v)
		return nil
	case adjustmentevent.FieldNewLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewLevel(v)
		return nil
	case adjustmentevent.FieldAdjustmentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustmentType(v)
		return nil
	case adjustmentevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case adjustmentevent.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case adjustmentevent.FieldScaffoldingRecommended:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScaffoldingRecommended(v)
		return nil
	}
	return fmt.Errorf("unknown AdjustmentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdjustmentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, adjustmentevent.FieldSequence)
	}
	if m.addprevious_level != nil {
		fields = append(fields, adjustmentevent.FieldPreviousLevel)
	}
	if m.addnew_level != nil {
		fields = append(fields, adjustmentevent.FieldNewLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdjustmentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adjustmentevent.FieldSequence:
		return m.AddedSequence()
	case adjustmentevent.FieldPreviousLevel:
		return m.AddedPreviousLevel()
	case adjustmentevent.FieldNewLevel:
		return m.AddedNewLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdjustmentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adjustmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case adjustmentevent.FieldPreviousLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousLevel(v)
		return nil
	case adjustmentevent.FieldNewLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewLevel(v)
		return nil
	}
	return fmt.Errorf("unknown AdjustmentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdjustmentEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdjustmentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdjustmentEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdjustmentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdjustmentEventMutation) ResetField(name string) error {
	switch name {
	case adjustmentevent.FieldSequence:
		m.ResetSequence()
		return nil
	case adjustmentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case adjustmentevent.FieldUserID:
		m.ResetUserID()
		return nil
	case adjustmentevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case adjustmentevent.FieldPreviousLevel:
		m.ResetPreviousLevel()
		return nil
	case adjustmentevent.FieldNewLevel:
		m.ResetNewLevel()
		return nil
	case adjustmentevent.FieldAdjustmentType:
		m.ResetAdjustmentType()
		return nil
	case adjustmentevent.FieldReason:
		m.ResetReason()
		return nil
	case adjustmentevent.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case adjustmentevent.FieldScaffoldingRecommended:
		m.ResetScaffoldingRecommended()
		return nil
	}
	return fmt.Errorf("unknown AdjustmentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdjustmentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdjustmentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdjustmentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdjustmentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdjustmentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdjustmentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdjustmentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdjustmentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdjustmentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdjustmentEvent edge %s", name)
}

// ConceptMasteryMutation represents an operation that mutates the ConceptMastery nodes in the graph.
type ConceptMasteryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	concept_name      *string
	mastery_level     *float64
	addmastery_level  *float64
	times_seen        *int
	addtimes_seen     *int
	times_correct     *int
	addtimes_correct  *int
	last_seen         *time.Time
	knowledge_type    *string
	avg_difficulty    *float64
	addavg_difficulty *float64
	max_difficulty    *int
	addmax_difficulty *int
	struggle_area     *string
	complexity        *int
	addcomplexity     *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ConceptMastery, error)
	predicates        []predicate.ConceptMastery
}

var _ ent.Mutation = (*ConceptMasteryMutation)(nil)

// conceptmasteryOption allows management of the mutation configuration using functional options.
type conceptmasteryOption func(*ConceptMasteryMutation)

// newConceptMasteryMutation creates new mutation for the ConceptMastery entity.
func newConceptMasteryMutation(c config, op Op, opts ...conceptmasteryOption) *ConceptMasteryMutation {
	m := &ConceptMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeConceptMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptMasteryID sets the ID field of the mutation.
func withConceptMasteryID(id int) conceptmasteryOption {
	return func(m *ConceptMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *ConceptMastery
		)
		m.oldValue = func(ctx context.Context) (*ConceptMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConceptMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConceptMastery sets the old ConceptMastery of the mutation.
func withConceptMastery(node *ConceptMastery) conceptmasteryOption {
	return func(m *ConceptMasteryMutation) {
		m.oldValue = func(context.Context) (*ConceptMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConceptMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ConceptMasteryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConceptMasteryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConceptMasteryMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptName sets the "concept_name" field.
func (m *ConceptMasteryMutation) SetConceptName(s string) {
	m.concept_name = &s
}

// ConceptName returns the value of the "concept_name" field in the mutation.
func (m *ConceptMasteryMutation) ConceptName() (r string, exists bool) {
	v := m.concept_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptName returns the old "concept_name" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldConceptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptName: %w", err)
	}
	return oldValue.ConceptName, nil
}

// ResetConceptName resets all changes to the "concept_name" field.
func (m *ConceptMasteryMutation) ResetConceptName() {
	m.concept_name = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *ConceptMasteryMutation) SetMasteryLevel(f float64) {
	m.mastery_level = &f
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *ConceptMasteryMutation) MasteryLevel() (r float64, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldMasteryLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (m *ConceptMasteryMutation) AddMasteryLevel(f float64) {
	if m.addmastery_level != nil {
		*m.addmastery_level += f
	} else {
		m.addmastery_level = &f
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *ConceptMasteryMutation) AddedMasteryLevel() (r float64, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *ConceptMasteryMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// SetTimesSeen sets the "times_seen" field.
func (m *ConceptMasteryMutation) SetTimesSeen(i int) {
	m.times_seen = &i
	m.addtimes_seen = nil
}

// TimesSeen returns the value of the "times_seen" field in the mutation.
func (m *ConceptMasteryMutation) TimesSeen() (r int, exists bool) {
	v := m.times_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesSeen returns the old "times_seen" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldTimesSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesSeen: %w", err)
	}
	return oldValue.TimesSeen, nil
}

// AddTimesSeen adds i to the "times_seen" field.
func (m *ConceptMasteryMutation) AddTimesSeen(i int) {
	if m.addtimes_seen != nil {
		*m.addtimes_seen += i
	} else {
		m.addtimes_seen = &i
	}
}

// AddedTimesSeen returns the value that was added to the "times_seen" field in this mutation.
func (m *ConceptMasteryMutation) AddedTimesSeen() (r int, exists bool) {
	v := m.addtimes_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesSeen resets all changes to the "times_seen" field.
func (m *ConceptMasteryMutation) ResetTimesSeen() {
	m.times_seen = nil
	m.addtimes_seen = nil
}

// SetTimesCorrect sets the "times_correct" field.
func (m *ConceptMasteryMutation) SetTimesCorrect(i int) {
	m.times_correct = &i
	m.addtimes_correct = nil
}

// TimesCorrect returns the value of the "times_correct" field in the mutation.
func (m *ConceptMasteryMutation) TimesCorrect() (r int, exists bool) {
	v := m.times_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesCorrect returns the old "times_correct" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldTimesCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesCorrect: %w", err)
	}
	return oldValue.TimesCorrect, nil
}

// AddTimesCorrect adds i to the "times_correct" field.
func (m *ConceptMasteryMutation) AddTimesCorrect(i int) {
	if m.addtimes_correct != nil {
		*m.addtimes_correct += i
	} else {
		m.addtimes_correct = &i
	}
}

// AddedTimesCorrect returns the value that was added to the "times_correct" field in this mutation.
func (m *ConceptMasteryMutation) AddedTimesCorrect() (r int, exists bool) {
	v := m.addtimes_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesCorrect resets all changes to the "times_correct" field.
func (m *ConceptMasteryMutation) ResetTimesCorrect() {
	m.times_correct = nil
	m.addtimes_correct = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ConceptMasteryMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ConceptMasteryMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *ConceptMasteryMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[conceptmastery.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *ConceptMasteryMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[conceptmastery.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ConceptMasteryMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, conceptmastery.FieldLastSeen)
}

// SetKnowledgeType sets the "knowledge_type" field.
func (m *ConceptMasteryMutation) SetKnowledgeType(s string) {
	m.knowledge_type = &s
}

// KnowledgeType returns the value of the "knowledge_type" field in the mutation.
func (m *ConceptMasteryMutation) KnowledgeType() (r string, exists bool) {
	v := m.knowledge_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeType returns the old "knowledge_type" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldKnowledgeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeType: %w", err)
	}
	return oldValue.KnowledgeType, nil
}

// ResetKnowledgeType resets all changes to the "knowledge_type" field.
func (m *ConceptMasteryMutation) ResetKnowledgeType() {
	m.knowledge_type = nil
}

// SetAvgDifficulty sets the "avg_difficulty" field.
func (m *ConceptMasteryMutation) SetAvgDifficulty(f float64) {
	m.avg_difficulty = &f
	m.addavg_difficulty = nil
}

// AvgDifficulty returns the value of the "avg_difficulty" field in the mutation.
func (m *ConceptMasteryMutation) AvgDifficulty() (r float64, exists bool) {
	v := m.avg_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDifficulty returns the old "avg_difficulty" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldAvgDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDifficulty: %w", err)
	}
	return oldValue.AvgDifficulty, nil
}

// AddAvgDifficulty adds f to the "avg_difficulty" field.
func (m *ConceptMasteryMutation) AddAvgDifficulty(f float64) {
	if m.addavg_difficulty != nil {
		*m.addavg_difficulty += f
	} else {
		m.addavg_difficulty = &f
	}
}

// AddedAvgDifficulty returns the value that was added to the "avg_difficulty" field in this mutation.
func (m *ConceptMasteryMutation) AddedAvgDifficulty() (r float64, exists bool) {
	v := m.addavg_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgDifficulty resets all changes to the "avg_difficulty" field.
func (m *ConceptMasteryMutation) ResetAvgDifficulty() {
	m.avg_difficulty = nil
	m.addavg_difficulty = nil
}

// SetMaxDifficulty sets the "max_difficulty" field.
func (m *ConceptMasteryMutation) SetMaxDifficulty(i int) {
	m.max_difficulty = &i
	m.addmax_difficulty = nil
}

// MaxDifficulty returns the value of the "max_difficulty" field in the mutation.
func (m *ConceptMasteryMutation) MaxDifficulty() (r int, exists bool) {
	v := m.max_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDifficulty returns the old "max_difficulty" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldMaxDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDifficulty: %w", err)
	}
	return oldValue.MaxDifficulty, nil
}

// AddMaxDifficulty adds i to the "max_difficulty" field.
func (m *ConceptMasteryMutation) AddMaxDifficulty(i int) {
	if m.addmax_difficulty != nil {
		*m.addmax_difficulty += i
	} else {
		m.addmax_difficulty = &i
	}
}

// AddedMaxDifficulty returns the value that was added to the "max_difficulty" field in this mutation.
func (m *ConceptMasteryMutation) AddedMaxDifficulty() (r int, exists bool) {
	v := m.addmax_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDifficulty resets all changes to the "max_difficulty" field.
func (m *ConceptMasteryMutation) ResetMaxDifficulty() {
	m.max_difficulty = nil
	m.addmax_difficulty = nil
}

// SetStruggleArea sets the "struggle_area" field.
func (m *ConceptMasteryMutation) SetStruggleArea(s string) {
	m.struggle_area = &s
}

// StruggleArea returns the value of the "struggle_area" field in the mutation.
func (m *ConceptMasteryMutation) StruggleArea() (r string, exists bool) {
	v := m.struggle_area
	if v == nil {
		return
	}
	return *v, true
}

// OldStruggleArea returns the old "struggle_area" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldStruggleArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStruggleArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStruggleArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStruggleArea: %w", err)
	}
	return oldValue.StruggleArea, nil
}

// ClearStruggleArea clears the value of the "struggle_area" field.
func (m *ConceptMasteryMutation) ClearStruggleArea() {
	m.struggle_area = nil
	m.clearedFields[conceptmastery.FieldStruggleArea] = struct{}{}
}

// StruggleAreaCleared returns if the "struggle_area" field was cleared in this mutation.
func (m *ConceptMasteryMutation) StruggleAreaCleared() bool {
	_, ok := m.clearedFields[conceptmastery.FieldStruggleArea]
	return ok
}

// ResetStruggleArea resets all changes to the "struggle_area" field.
func (m *ConceptMasteryMutation) ResetStruggleArea() {
	m.struggle_area = nil
	delete(m.clearedFields, conceptmastery.FieldStruggleArea)
}

// SetComplexity sets the "complexity" field.
func (m *ConceptMasteryMutation) SetComplexity(i int) {
	m.complexity = &i
	m.addcomplexity = nil
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *ConceptMasteryMutation) Complexity() (r int, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the ConceptMastery entity.
// If the ConceptMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMasteryMutation) OldComplexity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// AddComplexity adds i to the "complexity" field.
func (m *ConceptMasteryMutation) AddComplexity(i int) {
	if m.addcomplexity != nil {
		*m.addcomplexity += i
	} else {
		m.addcomplexity = &i
	}
}

// AddedComplexity returns the value that was added to the "complexity" field in this mutation.
func (m *ConceptMasteryMutation) AddedComplexity() (r int, exists bool) {
	v := m.addcomplexity
	if v == nil {
		return
	}
	return *v, true
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *ConceptMasteryMutation) ResetComplexity() {
	m.complexity = nil
	m.addcomplexity = nil
}

// Where appends a list predicates to the ConceptMasteryMutation builder.
func (m *ConceptMasteryMutation) Where(ps ...predicate.ConceptMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConceptMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConceptMastery).
func (m *ConceptMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptMasteryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, conceptmastery.FieldUserID)
	}
	if m.concept_name != nil {
		fields = append(fields, conceptmastery.FieldConceptName)
	}
	if m.mastery_level != nil {
		fields = append(fields, conceptmastery.FieldMasteryLevel)
	}
	if m.times_seen != nil {
		fields = append(fields, conceptmastery.FieldTimesSeen)
	}
	if m.times_correct != nil {
		fields = append(fields, conceptmastery.FieldTimesCorrect)
	}
	if m.last_seen != nil {
		fields = append(fields, conceptmastery.FieldLastSeen)
	}
	if m.knowledge_type != nil {
		fields = append(fields, conceptmastery.FieldKnowledgeType)
	}
	if m.avg_difficulty != nil {
		fields = append(fields, conceptmastery.FieldAvgDifficulty)
	}
	if m.max_difficulty != nil {
		fields = append(fields, conceptmastery.FieldMaxDifficulty)
	}
	if m.struggle_area != nil {
		fields = append(fields, conceptmastery.FieldStruggleArea)
	}
	if m.complexity != nil {
		fields = append(fields, conceptmastery.FieldComplexity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conceptmastery.FieldUserID:
		return m.UserID()
	case conceptmastery.FieldConceptName:
		return m.ConceptName()
	case conceptmastery.FieldMasteryLevel:
		return m.MasteryLevel()
	case conceptmastery.FieldTimesSeen:
		return m.TimesSeen()
	case conceptmastery.FieldTimesCorrect:
		return m.TimesCorrect()
	case conceptmastery.FieldLastSeen:
		return m.LastSeen()
	case conceptmastery.FieldKnowledgeType:
		return m.KnowledgeType()
	case conceptmastery.FieldAvgDifficulty:
		return m.AvgDifficulty()
	case conceptmastery.FieldMaxDifficulty:
		return m.MaxDifficulty()
	case conceptmastery.FieldStruggleArea:
		return m.StruggleArea()
	case conceptmastery.FieldComplexity:
		return m.Complexity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conceptmastery.FieldUserID:
		return m.OldUserID(ctx)
	case conceptmastery.FieldConceptName:
		return m.OldConceptName(ctx)
	case conceptmastery.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case conceptmastery.FieldTimesSeen:
		return m.OldTimesSeen(ctx)
	case conceptmastery.FieldTimesCorrect:
		return m.OldTimesCorrect(ctx)
	case conceptmastery.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case conceptmastery.FieldKnowledgeType:
		return m.OldKnowledgeType(ctx)
	case conceptmastery.FieldAvgDifficulty:
		return m.OldAvgDifficulty(ctx)
	case conceptmastery.FieldMaxDifficulty:
		return m.OldMaxDifficulty(ctx)
	case conceptmastery.FieldStruggleArea:
		return m.OldStruggleArea(ctx)
	case conceptmastery.FieldComplexity:
		return m.OldComplexity(ctx)
	}
	return nil, fmt.Errorf("unknown ConceptMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conceptmastery.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conceptmastery.FieldConceptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptName(v)
		return nil
	case conceptmastery.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case conceptmastery.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesSeen(v)
		return nil
	case conceptmastery.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesCorrect(v)
		return nil
	case conceptmastery.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case conceptmastery.FieldKnowledgeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeType(v)
		return nil
	case conceptmastery.FieldAvgDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDifficulty(v)
		return nil
	case conceptmastery.FieldMaxDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDifficulty(v)
		return nil
	case conceptmastery.FieldStruggleArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStruggleArea(v)
		return nil
	case conceptmastery.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addmastery_level != nil {
		fields = append(fields, conceptmastery.FieldMasteryLevel)
	}
	if m.addtimes_seen != nil {
		fields = append(fields, conceptmastery.FieldTimesSeen)
	}
	if m.addtimes_correct != nil {
		fields = append(fields, conceptmastery.FieldTimesCorrect)
	}
	if m.addavg_difficulty != nil {
		fields = append(fields, conceptmastery.FieldAvgDifficulty)
	}
	if m.addmax_difficulty != nil {
		fields = append(fields, conceptmastery.FieldMaxDifficulty)
	}
	if m.addcomplexity != nil {
		fields = append(fields, conceptmastery.FieldComplexity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conceptmastery.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	case conceptmastery.FieldTimesSeen:
		return m.AddedTimesSeen()
	case conceptmastery.FieldTimesCorrect:
		return m.AddedTimesCorrect()
	case conceptmastery.FieldAvgDifficulty:
		return m.AddedAvgDifficulty()
	case conceptmastery.FieldMaxDifficulty:
		return m.AddedMaxDifficulty()
	case conceptmastery.FieldComplexity:
		return m.AddedComplexity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conceptmastery.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	case conceptmastery.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesSeen(v)
		return nil
	case conceptmastery.FieldTimesCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesCorrect(v)
		return nil
	case conceptmastery.FieldAvgDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDifficulty(v)
		return nil
	case conceptmastery.FieldMaxDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDifficulty(v)
		return nil
	case conceptmastery.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown ConceptMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptMasteryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conceptmastery.FieldLastSeen) {
		fields = append(fields, conceptmastery.FieldLastSeen)
	}
	if m.FieldCleared(conceptmastery.FieldStruggleArea) {
		fields = append(fields, conceptmastery.FieldStruggleArea)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptMasteryMutation) ClearField(name string) error {
	switch name {
	case conceptmastery.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	case conceptmastery.FieldStruggleArea:
		m.ClearStruggleArea()
		return nil
	}
	return fmt.Errorf("unknown ConceptMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptMasteryMutation) ResetField(name string) error {
	switch name {
	case conceptmastery.FieldUserID:
		m.ResetUserID()
		return nil
	case conceptmastery.FieldConceptName:
		m.ResetConceptName()
		return nil
	case conceptmastery.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case conceptmastery.FieldTimesSeen:
		m.ResetTimesSeen()
		return nil
	case conceptmastery.FieldTimesCorrect:
		m.ResetTimesCorrect()
		return nil
	case conceptmastery.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case conceptmastery.FieldKnowledgeType:
		m.ResetKnowledgeType()
		return nil
	case conceptmastery.FieldAvgDifficulty:
		m.ResetAvgDifficulty()
		return nil
	case conceptmastery.FieldMaxDifficulty:
		m.ResetMaxDifficulty()
		return nil
	case conceptmastery.FieldStruggleArea:
		m.ResetStruggleArea()
		return nil
	case conceptmastery.FieldComplexity:
		m.ResetComplexity()
		return nil
	}
	return fmt.Errorf("unknown ConceptMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConceptMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConceptMastery edge %s", name)
}

// KnowledgeGapMutation represents an operation that mutates the KnowledgeGap nodes in the graph.
type KnowledgeGapMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	concept_name           *string
	gap_type               *string
	identified_at          *time.Time
	resolved_at            *time.Time
	related_concepts       *[]string
	appendrelated_concepts []string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*KnowledgeGap, error)
	predicates             []predicate.KnowledgeGap
}

var _ ent.Mutation = (*KnowledgeGapMutation)(nil)

// knowledgegapOption allows management of the mutation configuration using functional options.
type knowledgegapOption func(*KnowledgeGapMutation)

// newKnowledgeGapMutation creates new mutation for the KnowledgeGap entity.
func newKnowledgeGapMutation(c config, op Op, opts ...knowledgegapOption) *KnowledgeGapMutation {
	m := &KnowledgeGapMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeGap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeGapID sets the ID field of the mutation.
func withKnowledgeGapID(id int) knowledgegapOption {
	return func(m *KnowledgeGapMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeGap
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeGap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeGap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeGap sets the old KnowledgeGap of the mutation.
func withKnowledgeGap(node *KnowledgeGap) knowledgegapOption {
	return func(m *KnowledgeGapMutation) {
		m.oldValue = func(context.Context) (*KnowledgeGap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeGapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeGapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeGapMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeGapMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeGap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *KnowledgeGapMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *KnowledgeGapMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *KnowledgeGapMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptName sets the "concept_name" field.
func (m *KnowledgeGapMutation) SetConceptName(s string) {
	m.concept_name = &s
}

// ConceptName returns the value of the "concept_name" field in the mutation.
func (m *KnowledgeGapMutation) ConceptName() (r string, exists bool) {
	v := m.concept_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptName returns the old "concept_name" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldConceptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptName: %w", err)
	}
	return oldValue.ConceptName, nil
}

// ResetConceptName resets all changes to the "concept_name" field.
func (m *KnowledgeGapMutation) ResetConceptName() {
	m.concept_name = nil
}

// SetGapType sets the "gap_type" field.
func (m *KnowledgeGapMutation) SetGapType(s string) {
	m.gap_type = &s
}

// GapType returns the value of the "gap_type" field in the mutation.
func (m *KnowledgeGapMutation) GapType() (r string, exists bool) {
	v := m.gap_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGapType returns the old "gap_type" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldGapType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapType: %w", err)
	}
	return oldValue.GapType, nil
}

// ResetGapType resets all changes to the "gap_type" field.
func (m *KnowledgeGapMutation) ResetGapType() {
	m.gap_type = nil
}

// SetIdentifiedAt sets the "identified_at" field.
func (m *KnowledgeGapMutation) SetIdentifiedAt(t time.Time) {
	m.identified_at = &t
}

// IdentifiedAt returns the value of the "identified_at" field in the mutation.
func (m *KnowledgeGapMutation) IdentifiedAt() (r time.Time, exists bool) {
	v := m.identified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifiedAt returns the old "identified_at" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldIdentifiedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifiedAt: %w", err)
	}
	return oldValue.IdentifiedAt, nil
}

// ResetIdentifiedAt resets all changes to the "identified_at" field.
func (m *KnowledgeGapMutation) ResetIdentifiedAt() {
	m.identified_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *KnowledgeGapMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *KnowledgeGapMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldResolvedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *KnowledgeGapMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[knowledgegap.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *KnowledgeGapMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[knowledgegap.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *KnowledgeGapMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, knowledgegap.FieldResolvedAt)
}

// SetRelatedConcepts sets the "related_concepts" field.
func (m *KnowledgeGapMutation) SetRelatedConcepts(s []string) {
	m.related_concepts = &s
	m.appendrelated_concepts = nil
}

// RelatedConcepts returns the value of the "related_concepts" field in the mutation.
func (m *KnowledgeGapMutation) RelatedConcepts() (r []string, exists bool) {
	v := m.related_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedConcepts returns the old "related_concepts" field's value of the KnowledgeGap entity.
// If the KnowledgeGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeGapMutation) OldRelatedConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedConcepts: %w", err)
	}
	return oldValue.RelatedConcepts, nil
}

// AppendRelatedConcepts adds s to the "related_concepts" field.
func (m *KnowledgeGapMutation) AppendRelatedConcepts(s []string) {
	m.appendrelated_concepts = append(m.appendrelated_concepts, s...)
}

// AppendedRelatedConcepts returns the list of values that were appended to the "related_concepts" field in this mutation.
func (m *KnowledgeGapMutation) AppendedRelatedConcepts() ([]string, bool) {
	if len(m.appendrelated_concepts) == 0 {
		return nil, false
	}
	return m.appendrelated_concepts, true
}

// ClearRelatedConcepts clears the value of the "related_concepts" field.
func (m *KnowledgeGapMutation) ClearRelatedConcepts() {
	m.related_concepts = nil
	m.appendrelated_concepts = nil
	m.clearedFields[knowledgegap.FieldRelatedConcepts] = struct{}{}
}

// RelatedConceptsCleared returns if the "related_concepts" field was cleared in this mutation.
func (m *KnowledgeGapMutation) RelatedConceptsCleared() bool {
	_, ok := m.clearedFields[knowledgegap.FieldRelatedConcepts]
	return ok
}

// ResetRelatedConcepts resets all changes to the "related_concepts" field.
func (m *KnowledgeGapMutation) ResetRelatedConcepts() {
	m.related_concepts = nil
	m.appendrelated_concepts = nil
	delete(m.clearedFields, knowledgegap.FieldRelatedConcepts)
}

// Where appends a list predicates to the KnowledgeGapMutation builder.
func (m *KnowledgeGapMutation) Where(ps ...predicate.KnowledgeGap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeGapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeGapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeGap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeGapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeGapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeGap).
func (m *KnowledgeGapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeGapMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, knowledgegap.FieldUserID)
	}
	if m.concept_name != nil {
		fields = append(fields, knowledgegap.FieldConceptName)
	}
	if m.gap_type != nil {
		fields = append(fields, knowledgegap.FieldGapType)
	}
	if m.identified_at != nil {
		fields = append(fields, knowledgegap.FieldIdentifiedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, knowledgegap.FieldResolvedAt)
	}
	if m.related_concepts != nil {
		fields = append(fields, knowledgegap.FieldRelatedConcepts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeGapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgegap.FieldUserID:
		return m.UserID()
	case knowledgegap.FieldConceptName:
		return m.ConceptName()
	case knowledgegap.FieldGapType:
		return m.GapType()
	case knowledgegap.FieldIdentifiedAt:
		return m.IdentifiedAt()
	case knowledgegap.FieldResolvedAt:
		return m.ResolvedAt()
	case knowledgegap.FieldRelatedConcepts:
		return m.RelatedConcepts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeGapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgegap.FieldUserID:
		return m.OldUserID(ctx)
	case knowledgegap.FieldConceptName:
		return m.OldConceptName(ctx)
	case knowledgegap.FieldGapType:
		return m.OldGapType(ctx)
	case knowledgegap.FieldIdentifiedAt:
		return m.OldIdentifiedAt(ctx)
	case knowledgegap.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case knowledgegap.FieldRelatedConcepts:
		return m.OldRelatedConcepts(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeGap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeGapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgegap.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case knowledgegap.FieldConceptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptName(v)
		return nil
	case knowledgegap.FieldGapType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapType(v)
		return nil
	case knowledgegap.FieldIdentifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifiedAt(v)
		return nil
	case knowledgegap.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case knowledgegap.FieldRelatedConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedConcepts(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeGapMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeGapMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeGapMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeGap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeGapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgegap.FieldResolvedAt) {
		fields = append(fields, knowledgegap.FieldResolvedAt)
	}
	if m.FieldCleared(knowledgegap.FieldRelatedConcepts) {
		fields = append(fields, knowledgegap.FieldRelatedConcepts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeGapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeGapMutation) ClearField(name string) error {
	switch name {
	case knowledgegap.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case knowledgegap.FieldRelatedConcepts:
		m.ClearRelatedConcepts()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeGapMutation) ResetField(name string) error {
	switch name {
	case knowledgegap.FieldUserID:
		m.ResetUserID()
		return nil
	case knowledgegap.FieldConceptName:
		m.ResetConceptName()
		return nil
	case knowledgegap.FieldGapType:
		m.ResetGapType()
		return nil
	case knowledgegap.FieldIdentifiedAt:
		m.ResetIdentifiedAt()
		return nil
	case knowledgegap.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case knowledgegap.FieldRelatedConcepts:
		m.ResetRelatedConcepts()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeGap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeGapMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeGapMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeGapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeGapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeGapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeGapMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeGapMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeGap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeGapMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeGap edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PerformanceEventMutation represents an operation that mutates the PerformanceEvent nodes in the graph.
type PerformanceEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	user_id             *string
	session_id          *string
	quiz_id             *int
	addquiz_id          *int
	question_number     *int
	addquestion_number  *int
	score               *float64
	addscore            *float64
	response_time_ms    *int
	addresponse_time_ms *int
	hints_used          *int
	addhints_used       *int
	difficulty_level    *int
	adddifficulty_level *int
	concept_tested      *string
	question_type       *string
	in_optimal_zone     *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PerformanceEvent, error)
	predicates          []predicate.PerformanceEvent
}

var _ ent.Mutation = (*PerformanceEventMutation)(nil)

// performanceeventOption allows management of the mutation configuration using functional options.
type performanceeventOption func(*PerformanceEventMutation)

// newPerformanceEventMutation creates new mutation for the PerformanceEvent entity.
func newPerformanceEventMutation(c config, op Op, opts ...performanceeventOption) *PerformanceEventMutation {
	m := &PerformanceEventMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceEventID sets the ID field of the mutation.
func withPerformanceEventID(id int) performanceeventOption {
	return func(m *PerformanceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceEvent
		)
		m.oldValue = func(ctx context.Context) (*PerformanceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceEvent sets the old PerformanceEvent of the mutation.
func withPerformanceEvent(node *PerformanceEvent) performanceeventOption {
	return func(m *PerformanceEventMutation) {
		m.oldValue = func(context.Context) (*PerformanceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PerformanceEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PerformanceEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PerformanceEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PerformanceEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PerformanceEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PerformanceEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PerformanceEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PerformanceEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *PerformanceEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PerformanceEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *PerformanceEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PerformanceEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PerformanceEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuizID sets the "quiz_id" field.
func (m *PerformanceEventMutation) SetQuizID(i int) {
	m.quiz_id = &i
	m.addquiz_id = nil
}

// QuizID returns the value of the "quiz_id" field in the mutation.
func (m *PerformanceEventMutation) QuizID() (r int, exists bool) {
	v := m.quiz_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizID returns the old "quiz_id" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldQuizID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizID: %w", err)
	}
	return oldValue.QuizID, nil
}

// AddQuizID adds i to the "quiz_id" field.
func (m *PerformanceEventMutation) AddQuizID(i int) {
	if m.addquiz_id != nil {
		*m.addquiz_id += i
	} else {
		m.addquiz_id = &i
	}
}

// AddedQuizID returns the value that was added to the "quiz_id" field in this mutation.
func (m *PerformanceEventMutation) AddedQuizID() (r int, exists bool) {
	v := m.addquiz_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuizID clears the value of the "quiz_id" field.
func (m *PerformanceEventMutation) ClearQuizID() {
	m.quiz_id = nil
	m.addquiz_id = nil
	m.clearedFields[performanceevent.FieldQuizID] = struct{}{}
}

// QuizIDCleared returns if the "quiz_id" field was cleared in this mutation.
func (m *PerformanceEventMutation) QuizIDCleared() bool {
	_, ok := m.clearedFields[performanceevent.FieldQuizID]
	return ok
}

// ResetQuizID resets all changes to the "quiz_id" field.
func (m *PerformanceEventMutation) ResetQuizID() {
	m.quiz_id = nil
	m.addquiz_id = nil
	delete(m.clearedFields, performanceevent.FieldQuizID)
}

// SetQuestionNumber sets the "question_number" field.
func (m *PerformanceEventMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *PerformanceEventMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *PerformanceEventMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *PerformanceEventMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *PerformanceEventMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetScore sets the "score" field.
func (m *PerformanceEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PerformanceEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PerformanceEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PerformanceEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PerformanceEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *PerformanceEventMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *PerformanceEventMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *PerformanceEventMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *PerformanceEventMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *PerformanceEventMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *PerformanceEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *PerformanceEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *PerformanceEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *PerformanceEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *PerformanceEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *PerformanceEventMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *PerformanceEventMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *PerformanceEventMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *PerformanceEventMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *PerformanceEventMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetConceptTested sets the "concept_tested" field.
func (m *PerformanceEventMutation) SetConceptTested(s string) {
	m.concept_tested = &s
}

// ConceptTested returns the value of the "concept_tested" field in the mutation.
func (m *PerformanceEventMutation) ConceptTested() (r string, exists bool) {
	v := m.concept_tested
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptTested returns the old "concept_tested" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldConceptTested(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptTested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptTested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptTested: %w", err)
	}
	return oldValue.ConceptTested, nil
}

// ResetConceptTested resets all changes to the "concept_tested" field.
func (m *PerformanceEventMutation) ResetConceptTested() {
	m.concept_tested = nil
}

// SetQuestionType sets the "question_type" field.
func (m *PerformanceEventMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *PerformanceEventMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *PerformanceEventMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetInOptimalZone sets the "in_optimal_zone" field.
func (m *PerformanceEventMutation) SetInOptimalZone(b bool) {
	m.in_optimal_zone = &b
}

// InOptimalZone returns the value of the "in_optimal_zone" field in the mutation.
func (m *PerformanceEventMutation) InOptimalZone() (r bool, exists bool) {
	v := m.in_optimal_zone
	if v == nil {
		return
	}
	return *v, true
}

// OldInOptimalZone returns the old "in_optimal_zone" field's value of the PerformanceEvent entity.
// If the PerformanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceEventMutation) OldInOptimalZone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInOptimalZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInOptimalZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInOptimalZone: %w", err)
	}
	return oldValue.InOptimalZone, nil
}

// ResetInOptimalZone resets all changes to the "in_optimal_zone" field.
func (m *PerformanceEventMutation) ResetInOptimalZone() {
	m.in_optimal_zone = nil
}

// Where appends a list predicates to the PerformanceEventMutation builder.
func (m *PerformanceEventMutation) Where(ps ...predicate.PerformanceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceEvent).
func (m *PerformanceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, performanceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, performanceevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, performanceevent.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, performanceevent.FieldSessionID)
	}
	if m.quiz_id != nil {
		fields = append(fields, performanceevent.FieldQuizID)
	}
	if m.question_number != nil {
		fields = append(fields, performanceevent.FieldQuestionNumber)
	}
	if m.score != nil {
		fields = append(fields, performanceevent.FieldScore)
	}
	if m.response_time_ms != nil {
		fields = append(fields, performanceevent.FieldResponseTimeMs)
	}
	if m.hints_used != nil {
		fields = append(fields, performanceevent.FieldHintsUsed)
	}
	if m.difficulty_level != nil {
		fields = append(fields, performanceevent.FieldDifficultyLevel)
	}
	if m.concept_tested != nil {
		fields = append(fields, performanceevent.FieldConceptTested)
	}
	if m.question_type != nil {
		fields = append(fields, performanceevent.FieldQuestionType)
	}
	if m.in_optimal_zone != nil {
		fields = append(fields, performanceevent.FieldInOptimalZone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performanceevent.FieldSequence:
		return m.Sequence()
	case performanceevent.FieldTimestamp:
		return m.Timestamp()
	case performanceevent.FieldUserID:
		return m.UserID()
	case performanceevent.FieldSessionID:
		return m.SessionID()
	case performanceevent.FieldQuizID:
		return m.QuizID()
	case performanceevent.FieldQuestionNumber:
		return m.QuestionNumber()
	case performanceevent.FieldScore:
		return m.Score()
	case performanceevent.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case performanceevent.FieldHintsUsed:
		return m.HintsUsed()
	case performanceevent.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case performanceevent.FieldConceptTested:
		return m.ConceptTested()
	case performanceevent.FieldQuestionType:
		return m.QuestionType()
	case performanceevent.FieldInOptimalZone:
		return m.InOptimalZone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performanceevent.FieldSequence:
		return m.OldSequence(ctx)
	case performanceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case performanceevent.FieldUserID:
		return m.OldUserID(ctx)
	case performanceevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case performanceevent.FieldQuizID:
		return m.OldQuizID(ctx)
	case performanceevent.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case performanceevent.FieldScore:
		return m.OldScore(ctx)
	case performanceevent.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case performanceevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case performanceevent.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case performanceevent.FieldConceptTested:
		return m.OldConceptTested(ctx)
	case performanceevent.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case performanceevent.FieldInOptimalZone:
		return m.OldInOptimalZone(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performanceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case performanceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case performanceevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performanceevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case performanceevent.FieldQuizID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizID(v)
		return nil
	case performanceevent.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case performanceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case performanceevent.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case performanceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case performanceevent.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case performanceevent.FieldConceptTested:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptTested(v)
		return nil
	case performanceevent.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case performanceevent.FieldInOptimalZone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInOptimalZone(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, performanceevent.FieldSequence)
	}
	if m.addquiz_id != nil {
		fields = append(fields, performanceevent.FieldQuizID)
	}
	if m.addquestion_number != nil {
		fields = append(fields, performanceevent.FieldQuestionNumber)
	}
	if m.addscore != nil {
		fields = append(fields, performanceevent.FieldScore)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, performanceevent.FieldResponseTimeMs)
	}
	if m.addhints_used != nil {
		fields = append(fields, performanceevent.FieldHintsUsed)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, performanceevent.FieldDifficultyLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performanceevent.FieldSequence:
		return m.AddedSequence()
	case performanceevent.FieldQuizID:
		return m.AddedQuizID()
	case performanceevent.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	case performanceevent.FieldScore:
		return m.AddedScore()
	case performanceevent.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case performanceevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	case performanceevent.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performanceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case performanceevent.FieldQuizID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizID(v)
		return nil
	case performanceevent.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	case performanceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case performanceevent.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case performanceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	case performanceevent.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(performanceevent.FieldQuizID) {
		fields = append(fields, performanceevent.FieldQuizID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceEventMutation) ClearField(name string) error {
	switch name {
	case performanceevent.FieldQuizID:
		m.ClearQuizID()
		return nil
	}
	return fmt.Errorf("unknown PerformanceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceEventMutation) ResetField(name string) error {
	switch name {
	case performanceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case performanceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case performanceevent.FieldUserID:
		m.ResetUserID()
		return nil
	case performanceevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case performanceevent.FieldQuizID:
		m.ResetQuizID()
		return nil
	case performanceevent.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case performanceevent.FieldScore:
		m.ResetScore()
		return nil
	case performanceevent.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case performanceevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case performanceevent.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case performanceevent.FieldConceptTested:
		m.ResetConceptTested()
		return nil
	case performanceevent.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case performanceevent.FieldInOptimalZone:
		m.ResetInOptimalZone()
		return nil
	}
	return fmt.Errorf("unknown PerformanceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceEvent edge %s", name)
}

// QuizResultMutation represents an operation that mutates the QuizResult nodes in the graph.
type QuizResultMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	session_id             *string
	topic                  *string
	total_questions        *int
	addtotal_questions     *int
	correct_answers        *int
	addcorrect_answers     *int
	total_mistakes         *int
	addtotal_mistakes      *int
	started_at             *time.Time
	completed_at           *time.Time
	question_details       *[]schema.QuestionDetail
	appendquestion_details []schema.QuestionDetail
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*QuizResult, error)
	predicates             []predicate.QuizResult
}

var _ ent.Mutation = (*QuizResultMutation)(nil)

// quizresultOption allows management of the mutation configuration using functional options.
type quizresultOption func(*QuizResultMutation)

// newQuizResultMutation creates new mutation for the QuizResult entity.
func newQuizResultMutation(c config, op Op, opts ...quizresultOption) *QuizResultMutation {
	m := &QuizResultMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResultID sets the ID field of the mutation.
func withQuizResultID(id int) quizresultOption {
	return func(m *QuizResultMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResult
		)
		m.oldValue = func(ctx context.Context) (*QuizResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResult sets the old QuizResult of the mutation.
func withQuizResult(node *QuizResult) quizresultOption {
	return func(m *QuizResultMutation) {
		m.oldValue = func(context.Context) (*QuizResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuizResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuizResultMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopic sets the "topic" field.
func (m *QuizResultMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuizResultMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuizResultMutation) ResetTopic() {
	m.topic = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *QuizResultMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *QuizResultMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *QuizResultMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *QuizResultMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *QuizResultMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *QuizResultMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *QuizResultMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *QuizResultMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *QuizResultMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *QuizResultMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetTotalMistakes sets the "total_mistakes" field.
func (m *QuizResultMutation) SetTotalMistakes(i int) {
	m.total_mistakes = &i
	m.addtotal_mistakes = nil
}

// TotalMistakes returns the value of the "total_mistakes" field in the mutation.
func (m *QuizResultMutation) TotalMistakes() (r int, exists bool) {
	v := m.total_mistakes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMistakes returns the old "total_mistakes" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTotalMistakes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMistakes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMistakes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMistakes: %w", err)
	}
	return oldValue.TotalMistakes, nil
}

// AddTotalMistakes adds i to the "total_mistakes" field.
func (m *QuizResultMutation) AddTotalMistakes(i int) {
	if m.addtotal_mistakes != nil {
		*m.addtotal_mistakes += i
	} else {
		m.addtotal_mistakes = &i
	}
}

// AddedTotalMistakes returns the value that was added to the "total_mistakes" field in this mutation.
func (m *QuizResultMutation) AddedTotalMistakes() (r int, exists bool) {
	v := m.addtotal_mistakes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMistakes resets all changes to the "total_mistakes" field.
func (m *QuizResultMutation) ResetTotalMistakes() {
	m.total_mistakes = nil
	m.addtotal_mistakes = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QuizResultMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QuizResultMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QuizResultMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *QuizResultMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QuizResultMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QuizResultMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[quizresult.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QuizResultMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QuizResultMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, quizresult.FieldCompletedAt)
}

// SetQuestionDetails sets the "question_details" field.
func (m *QuizResultMutation) SetQuestionDetails(sd []schema.QuestionDetail) {
	m.question_details = &sd
	m.appendquestion_details = nil
}

// QuestionDetails returns the value of the "question_details" field in the mutation.
func (m *QuizResultMutation) QuestionDetails() (r []schema.QuestionDetail, exists bool) {
	v := m.question_details
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionDetails returns the old "question_details" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuestionDetails(ctx context.Context) (v []schema.QuestionDetail, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionDetails: %w", err)
	}
	return oldValue.QuestionDetails, nil
}

// AppendQuestionDetails adds sd to the "question_details" field.
func (m *QuizResultMutation) AppendQuestionDetails(sd []schema.QuestionDetail) {
	m.appendquestion_details = append(m.appendquestion_details, sd...)
}

// AppendedQuestionDetails returns the list of values that were appended to the "question_details" field in this mutation.
func (m *QuizResultMutation) AppendedQuestionDetails() ([]schema.QuestionDetail, bool) {
	if len(m.appendquestion_details) == 0 {
		return nil, false
	}
	return m.appendquestion_details, true
}

// ClearQuestionDetails clears the value of the "question_details" field.
func (m *QuizResultMutation) ClearQuestionDetails() {
	m.question_details = nil
	m.appendquestion_details = nil
	m.clearedFields[quizresult.FieldQuestionDetails] = struct{}{}
}

// QuestionDetailsCleared returns if the "question_details" field was cleared in this mutation.
func (m *QuizResultMutation) QuestionDetailsCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldQuestionDetails]
	return ok
}

// ResetQuestionDetails resets all changes to the "question_details" field.
func (m *QuizResultMutation) ResetQuestionDetails() {
	m.question_details = nil
	m.appendquestion_details = nil
	delete(m.clearedFields, quizresult.FieldQuestionDetails)
}

// Where appends a list predicates to the QuizResultMutation builder.
func (m *QuizResultMutation) Where(ps ...predicate.QuizResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResult).
func (m *QuizResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, quizresult.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, quizresult.FieldSessionID)
	}
	if m.topic != nil {
		fields = append(fields, quizresult.FieldTopic)
	}
	if m.total_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, quizresult.FieldCorrectAnswers)
	}
	if m.total_mistakes != nil {
		fields = append(fields, quizresult.FieldTotalMistakes)
	}
	if m.started_at != nil {
		fields = append(fields, quizresult.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, quizresult.FieldCompletedAt)
	}
	if m.question_details != nil {
		fields = append(fields, quizresult.FieldQuestionDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldUserID:
		return m.UserID()
	case quizresult.FieldSessionID:
		return m.SessionID()
	case quizresult.FieldTopic:
		return m.Topic()
	case quizresult.FieldTotalQuestions:
		return m.TotalQuestions()
	case quizresult.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case quizresult.FieldTotalMistakes:
		return m.TotalMistakes()
	case quizresult.FieldStartedAt:
		return m.StartedAt()
	case quizresult.FieldCompletedAt:
		return m.CompletedAt()
	case quizresult.FieldQuestionDetails:
		return m.QuestionDetails()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresult.FieldUserID:
		return m.OldUserID(ctx)
	case quizresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizresult.FieldTopic:
		return m.OldTopic(ctx)
	case quizresult.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case quizresult.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case quizresult.FieldTotalMistakes:
		return m.OldTotalMistakes(ctx)
	case quizresult.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case quizresult.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case quizresult.FieldQuestionDetails:
		return m.OldQuestionDetails(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizresult.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case quizresult.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case quizresult.FieldTotalMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMistakes(v)
		return nil
	case quizresult.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case quizresult.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case quizresult.FieldQuestionDetails:
		v, ok := value.([]schema.QuestionDetail)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionDetails(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, quizresult.FieldCorrectAnswers)
	}
	if m.addtotal_mistakes != nil {
		fields = append(fields, quizresult.FieldTotalMistakes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case quizresult.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case quizresult.FieldTotalMistakes:
		return m.AddedTotalMistakes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case quizresult.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case quizresult.FieldTotalMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMistakes(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizresult.FieldCompletedAt) {
		fields = append(fields, quizresult.FieldCompletedAt)
	}
	if m.FieldCleared(quizresult.FieldQuestionDetails) {
		fields = append(fields, quizresult.FieldQuestionDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResultMutation) ClearField(name string) error {
	switch name {
	case quizresult.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case quizresult.FieldQuestionDetails:
		m.ClearQuestionDetails()
		return nil
	}
	return fmt.Errorf("unknown QuizResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResultMutation) ResetField(name string) error {
	switch name {
	case quizresult.FieldUserID:
		m.ResetUserID()
		return nil
	case quizresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizresult.FieldTopic:
		m.ResetTopic()
		return nil
	case quizresult.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case quizresult.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case quizresult.FieldTotalMistakes:
		m.ResetTotalMistakes()
		return nil
	case quizresult.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case quizresult.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case quizresult.FieldQuestionDetails:
		m.ResetQuestionDetails()
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizResult edge %s", name)
}

// SessionSnapshotMutation represents an operation that mutates the SessionSnapshot nodes in the graph.
type SessionSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	session_id    *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SessionSnapshot, error)
	predicates    []predicate.SessionSnapshot
}

var _ ent.Mutation = (*SessionSnapshotMutation)(nil)

// sessionsnapshotOption allows management of the mutation configuration using functional options.
type sessionsnapshotOption func(*SessionSnapshotMutation)

// newSessionSnapshotMutation creates new mutation for the SessionSnapshot entity.
func newSessionSnapshotMutation(c config, op Op, opts ...sessionsnapshotOption) *SessionSnapshotMutation {
	m := &SessionSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionSnapshotID sets the ID field of the mutation.
func withSessionSnapshotID(id int) sessionsnapshotOption {
	return func(m *SessionSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionSnapshot
		)
		m.oldValue = func(ctx context.Context) (*SessionSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionSnapshot sets the old SessionSnapshot of the mutation.
func withSessionSnapshot(node *SessionSnapshot) sessionsnapshotOption {
	return func(m *SessionSnapshotMutation) {
		m.oldValue = func(context.Context) (*SessionSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionSnapshotMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionSnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionSnapshotMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSequence sets the "sequence" field.
func (m *SessionSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SessionSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SessionSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SessionSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SessionSnapshotMutation builder.
func (m *SessionSnapshotMutation) Where(ps ...predicate.SessionSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionSnapshot).
func (m *SessionSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, sessionsnapshot.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionsnapshot.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, sessionsnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionsnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, sessionsnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionsnapshot.FieldUserID:
		return m.UserID()
	case sessionsnapshot.FieldSessionID:
		return m.SessionID()
	case sessionsnapshot.FieldSequence:
		return m.Sequence()
	case sessionsnapshot.FieldTimestamp:
		return m.Timestamp()
	case sessionsnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionsnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case sessionsnapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionsnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case sessionsnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionsnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionsnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionsnapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionsnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionsnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionsnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown SessionSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionSnapshotMutation) ResetField(name string) error {
	switch name {
	case sessionsnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionsnapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionsnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionsnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionsnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionSnapshot edge %s", name)
}
