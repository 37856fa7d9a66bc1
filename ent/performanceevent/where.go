// Code generated by ent, DO NOT EDIT.

package performanceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldScore, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldDifficultyLevel, v))
}

// ConceptTested applies equality check predicate on the "concept_tested" field. It's identical to ConceptTestedEQ.
func ConceptTested(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldConceptTested, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuestionType, v))
}

// InOptimalZone applies equality check predicate on the "in_optimal_zone" field. It's identical to InOptimalZoneEQ.
func InOptimalZone(v bool) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldInOptimalZone, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDIsNil applies the IsNil predicate on the "quiz_id" field.
func QuizIDIsNil() predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIsNull(FieldQuizID))
}

// QuizIDNotNil applies the NotNil predicate on the "quiz_id" field.
func QuizIDNotNil() predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotNull(FieldQuizID))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldQuestionNumber, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldScore, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldResponseTimeMs, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldDifficultyLevel, v))
}

// ConceptTestedEQ applies the EQ predicate on the "concept_tested" field.
func ConceptTestedEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldConceptTested, v))
}

// ConceptTestedNEQ applies the NEQ predicate on the "concept_tested" field.
func ConceptTestedNEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldConceptTested, v))
}

// ConceptTestedIn applies the In predicate on the "concept_tested" field.
func ConceptTestedIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldConceptTested, vs...))
}

// ConceptTestedNotIn applies the NotIn predicate on the "concept_tested" field.
func ConceptTestedNotIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldConceptTested, vs...))
}

// ConceptTestedGT applies the GT predicate on the "concept_tested" field.
func ConceptTestedGT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldConceptTested, v))
}

// ConceptTestedGTE applies the GTE predicate on the "concept_tested" field.
func ConceptTestedGTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldConceptTested, v))
}

// ConceptTestedLT applies the LT predicate on the "concept_tested" field.
func ConceptTestedLT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldConceptTested, v))
}

// ConceptTestedLTE applies the LTE predicate on the "concept_tested" field.
func ConceptTestedLTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldConceptTested, v))
}

// ConceptTestedContains applies the Contains predicate on the "concept_tested" field.
func ConceptTestedContains(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContains(FieldConceptTested, v))
}

// ConceptTestedHasPrefix applies the HasPrefix predicate on the "concept_tested" field.
func ConceptTestedHasPrefix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasPrefix(FieldConceptTested, v))
}

// ConceptTestedHasSuffix applies the HasSuffix predicate on the "concept_tested" field.
func ConceptTestedHasSuffix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasSuffix(FieldConceptTested, v))
}

// ConceptTestedEqualFold applies the EqualFold predicate on the "concept_tested" field.
func ConceptTestedEqualFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEqualFold(FieldConceptTested, v))
}

// ConceptTestedContainsFold applies the ContainsFold predicate on the "concept_tested" field.
func ConceptTestedContainsFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContainsFold(FieldConceptTested, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// InOptimalZoneEQ applies the EQ predicate on the "in_optimal_zone" field.
func InOptimalZoneEQ(v bool) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldEQ(FieldInOptimalZone, v))
}

// InOptimalZoneNEQ applies the NEQ predicate on the "in_optimal_zone" field.
func InOptimalZoneNEQ(v bool) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.FieldNEQ(FieldInOptimalZone, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceEvent) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceEvent) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceEvent) predicate.PerformanceEvent {
	return predicate.PerformanceEvent(sql.NotPredicates(p))
}
