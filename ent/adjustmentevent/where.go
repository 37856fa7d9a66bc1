// Code generated by ent, DO NOT EDIT.

package adjustmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// PreviousLevel applies equality check predicate on the "previous_level" field. It's identical to PreviousLevelEQ.
func PreviousLevel(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldPreviousLevel, v))
}

// NewLevel applies equality check predicate on the "new_level" field. It's identical to NewLevelEQ.
func NewLevel(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldNewLevel, v))
}

// AdjustmentType applies equality check predicate on the "adjustment_type" field. It's identical to AdjustmentTypeEQ.
func AdjustmentType(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReason, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTriggeredBy, v))
}

// ScaffoldingRecommended applies equality check predicate on the "scaffolding_recommended" field. It's identical to ScaffoldingRecommendedEQ.
func ScaffoldingRecommended(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldScaffoldingRecommended, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// PreviousLevelEQ applies the EQ predicate on the "previous_level" field.
func PreviousLevelEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldPreviousLevel, v))
}

// PreviousLevelNEQ applies the NEQ predicate on the "previous_level" field.
func PreviousLevelNEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldPreviousLevel, v))
}

// PreviousLevelIn applies the In predicate on the "previous_level" field.
func PreviousLevelIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldPreviousLevel, vs...))
}

// PreviousLevelNotIn applies the NotIn predicate on the "previous_level" field.
func PreviousLevelNotIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldPreviousLevel, vs...))
}

// PreviousLevelGT applies the GT predicate on the "previous_level" field.
func PreviousLevelGT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldPreviousLevel, v))
}

// PreviousLevelGTE applies the GTE predicate on the "previous_level" field.
func PreviousLevelGTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldPreviousLevel, v))
}

// PreviousLevelLT applies the LT predicate on the "previous_level" field.
func PreviousLevelLT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldPreviousLevel, v))
}

// PreviousLevelLTE applies the LTE predicate on the "previous_level" field.
func PreviousLevelLTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldPreviousLevel, v))
}

// NewLevelEQ applies the EQ predicate on the "new_level" field.
func NewLevelEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldNewLevel, v))
}

// NewLevelNEQ applies the NEQ predicate on the "new_level" field.
func NewLevelNEQ(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldNewLevel, v))
}

// NewLevelIn applies the In predicate on the "new_level" field.
func NewLevelIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldNewLevel, vs...))
}

// NewLevelNotIn applies the NotIn predicate on the "new_level" field.
func NewLevelNotIn(vs ...int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldNewLevel, vs...))
}

// NewLevelGT applies the GT predicate on the "new_level" field.
func NewLevelGT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldNewLevel, v))
}

// NewLevelGTE applies the GTE predicate on the "new_level" field.
func NewLevelGTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldNewLevel, v))
}

// NewLevelLT applies the LT predicate on the "new_level" field.
func NewLevelLT(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldNewLevel, v))
}

// NewLevelLTE applies the LTE predicate on the "new_level" field.
func NewLevelLTE(v int) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldNewLevel, v))
}

// AdjustmentTypeEQ applies the EQ predicate on the "adjustment_type" field.
func AdjustmentTypeEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeNEQ applies the NEQ predicate on the "adjustment_type" field.
func AdjustmentTypeNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeIn applies the In predicate on the "adjustment_type" field.
func AdjustmentTypeIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeNotIn applies the NotIn predicate on the "adjustment_type" field.
func AdjustmentTypeNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeGT applies the GT predicate on the "adjustment_type" field.
func AdjustmentTypeGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldAdjustmentType, v))
}

// AdjustmentTypeGTE applies the GTE predicate on the "adjustment_type" field.
func AdjustmentTypeGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldAdjustmentType, v))
}

// AdjustmentTypeLT applies the LT predicate on the "adjustment_type" field.
func AdjustmentTypeLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldAdjustmentType, v))
}

// AdjustmentTypeLTE applies the LTE predicate on the "adjustment_type" field.
func AdjustmentTypeLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldAdjustmentType, v))
}

// AdjustmentTypeContains applies the Contains predicate on the "adjustment_type" field.
func AdjustmentTypeContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldAdjustmentType, v))
}

// AdjustmentTypeHasPrefix applies the HasPrefix predicate on the "adjustment_type" field.
func AdjustmentTypeHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldAdjustmentType, v))
}

// AdjustmentTypeHasSuffix applies the HasSuffix predicate on the "adjustment_type" field.
func AdjustmentTypeHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldAdjustmentType, v))
}

// AdjustmentTypeEqualFold applies the EqualFold predicate on the "adjustment_type" field.
func AdjustmentTypeEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldAdjustmentType, v))
}

// AdjustmentTypeContainsFold applies the ContainsFold predicate on the "adjustment_type" field.
func AdjustmentTypeContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldAdjustmentType, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldReason, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// ScaffoldingRecommendedEQ applies the EQ predicate on the "scaffolding_recommended" field.
func ScaffoldingRecommendedEQ(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldEQ(FieldScaffoldingRecommended, v))
}

// ScaffoldingRecommendedNEQ applies the NEQ predicate on the "scaffolding_recommended" field.
func ScaffoldingRecommendedNEQ(v bool) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.FieldNEQ(FieldScaffoldingRecommended, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdjustmentEvent) predicate.AdjustmentEvent {
	return predicate.AdjustmentEvent(sql.NotPredicates(p))
}
