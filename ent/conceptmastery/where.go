// Code generated by ent, DO NOT EDIT.

package conceptmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldUserID, v))
}

// ConceptName applies equality check predicate on the "concept_name" field. It's identical to ConceptNameEQ.
func ConceptName(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldConceptName, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// TimesSeen applies equality check predicate on the "times_seen" field. It's identical to TimesSeenEQ.
func TimesSeen(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesCorrect applies equality check predicate on the "times_correct" field. It's identical to TimesCorrectEQ.
func TimesCorrect(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldTimesCorrect, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldLastSeen, v))
}

// KnowledgeType applies equality check predicate on the "knowledge_type" field. It's identical to KnowledgeTypeEQ.
func KnowledgeType(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldKnowledgeType, v))
}

// AvgDifficulty applies equality check predicate on the "avg_difficulty" field. It's identical to AvgDifficultyEQ.
func AvgDifficulty(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldAvgDifficulty, v))
}

// MaxDifficulty applies equality check predicate on the "max_difficulty" field. It's identical to MaxDifficultyEQ.
func MaxDifficulty(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldMaxDifficulty, v))
}

// StruggleArea applies equality check predicate on the "struggle_area" field. It's identical to StruggleAreaEQ.
func StruggleArea(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldStruggleArea, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldComplexity, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptNameEQ applies the EQ predicate on the "concept_name" field.
func ConceptNameEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldConceptName, v))
}

// ConceptNameNEQ applies the NEQ predicate on the "concept_name" field.
func ConceptNameNEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldConceptName, v))
}

// ConceptNameIn applies the In predicate on the "concept_name" field.
func ConceptNameIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldConceptName, vs...))
}

// ConceptNameNotIn applies the NotIn predicate on the "concept_name" field.
func ConceptNameNotIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldConceptName, vs...))
}

// ConceptNameGT applies the GT predicate on the "concept_name" field.
func ConceptNameGT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldConceptName, v))
}

// ConceptNameGTE applies the GTE predicate on the "concept_name" field.
func ConceptNameGTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldConceptName, v))
}

// ConceptNameLT applies the LT predicate on the "concept_name" field.
func ConceptNameLT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldConceptName, v))
}

// ConceptNameLTE applies the LTE predicate on the "concept_name" field.
func ConceptNameLTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldConceptName, v))
}

// ConceptNameContains applies the Contains predicate on the "concept_name" field.
func ConceptNameContains(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContains(FieldConceptName, v))
}

// ConceptNameHasPrefix applies the HasPrefix predicate on the "concept_name" field.
func ConceptNameHasPrefix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasPrefix(FieldConceptName, v))
}

// ConceptNameHasSuffix applies the HasSuffix predicate on the "concept_name" field.
func ConceptNameHasSuffix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasSuffix(FieldConceptName, v))
}

// ConceptNameEqualFold applies the EqualFold predicate on the "concept_name" field.
func ConceptNameEqualFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEqualFold(FieldConceptName, v))
}

// ConceptNameContainsFold applies the ContainsFold predicate on the "concept_name" field.
func ConceptNameContainsFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContainsFold(FieldConceptName, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldMasteryLevel, v))
}

// TimesSeenEQ applies the EQ predicate on the "times_seen" field.
func TimesSeenEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldTimesSeen, v))
}

// TimesSeenNEQ applies the NEQ predicate on the "times_seen" field.
func TimesSeenNEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldTimesSeen, v))
}

// TimesSeenIn applies the In predicate on the "times_seen" field.
func TimesSeenIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldTimesSeen, vs...))
}

// TimesSeenNotIn applies the NotIn predicate on the "times_seen" field.
func TimesSeenNotIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldTimesSeen, vs...))
}

// TimesSeenGT applies the GT predicate on the "times_seen" field.
func TimesSeenGT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldTimesSeen, v))
}

// TimesSeenGTE applies the GTE predicate on the "times_seen" field.
func TimesSeenGTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldTimesSeen, v))
}

// TimesSeenLT applies the LT predicate on the "times_seen" field.
func TimesSeenLT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldTimesSeen, v))
}

// TimesSeenLTE applies the LTE predicate on the "times_seen" field.
func TimesSeenLTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldTimesSeen, v))
}

// TimesCorrectEQ applies the EQ predicate on the "times_correct" field.
func TimesCorrectEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldTimesCorrect, v))
}

// TimesCorrectNEQ applies the NEQ predicate on the "times_correct" field.
func TimesCorrectNEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldTimesCorrect, v))
}

// TimesCorrectIn applies the In predicate on the "times_correct" field.
func TimesCorrectIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldTimesCorrect, vs...))
}

// TimesCorrectNotIn applies the NotIn predicate on the "times_correct" field.
func TimesCorrectNotIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldTimesCorrect, vs...))
}

// TimesCorrectGT applies the GT predicate on the "times_correct" field.
func TimesCorrectGT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldTimesCorrect, v))
}

// TimesCorrectGTE applies the GTE predicate on the "times_correct" field.
func TimesCorrectGTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldTimesCorrect, v))
}

// TimesCorrectLT applies the LT predicate on the "times_correct" field.
func TimesCorrectLT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldTimesCorrect, v))
}

// TimesCorrectLTE applies the LTE predicate on the "times_correct" field.
func TimesCorrectLTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldTimesCorrect, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotNull(FieldLastSeen))
}

// KnowledgeTypeEQ applies the EQ predicate on the "knowledge_type" field.
func KnowledgeTypeEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldKnowledgeType, v))
}

// KnowledgeTypeNEQ applies the NEQ predicate on the "knowledge_type" field.
func KnowledgeTypeNEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldKnowledgeType, v))
}

// KnowledgeTypeIn applies the In predicate on the "knowledge_type" field.
func KnowledgeTypeIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldKnowledgeType, vs...))
}

// KnowledgeTypeNotIn applies the NotIn predicate on the "knowledge_type" field.
func KnowledgeTypeNotIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldKnowledgeType, vs...))
}

// KnowledgeTypeGT applies the GT predicate on the "knowledge_type" field.
func KnowledgeTypeGT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldKnowledgeType, v))
}

// KnowledgeTypeGTE applies the GTE predicate on the "knowledge_type" field.
func KnowledgeTypeGTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldKnowledgeType, v))
}

// KnowledgeTypeLT applies the LT predicate on the "knowledge_type" field.
func KnowledgeTypeLT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldKnowledgeType, v))
}

// KnowledgeTypeLTE applies the LTE predicate on the "knowledge_type" field.
func KnowledgeTypeLTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldKnowledgeType, v))
}

// KnowledgeTypeContains applies the Contains predicate on the "knowledge_type" field.
func KnowledgeTypeContains(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContains(FieldKnowledgeType, v))
}

// KnowledgeTypeHasPrefix applies the HasPrefix predicate on the "knowledge_type" field.
func KnowledgeTypeHasPrefix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasPrefix(FieldKnowledgeType, v))
}

// KnowledgeTypeHasSuffix applies the HasSuffix predicate on the "knowledge_type" field.
func KnowledgeTypeHasSuffix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasSuffix(FieldKnowledgeType, v))
}

// KnowledgeTypeEqualFold applies the EqualFold predicate on the "knowledge_type" field.
func KnowledgeTypeEqualFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEqualFold(FieldKnowledgeType, v))
}

// KnowledgeTypeContainsFold applies the ContainsFold predicate on the "knowledge_type" field.
func KnowledgeTypeContainsFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContainsFold(FieldKnowledgeType, v))
}

// AvgDifficultyEQ applies the EQ predicate on the "avg_difficulty" field.
func AvgDifficultyEQ(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldAvgDifficulty, v))
}

// AvgDifficultyNEQ applies the NEQ predicate on the "avg_difficulty" field.
func AvgDifficultyNEQ(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldAvgDifficulty, v))
}

// AvgDifficultyIn applies the In predicate on the "avg_difficulty" field.
func AvgDifficultyIn(vs ...float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldAvgDifficulty, vs...))
}

// AvgDifficultyNotIn applies the NotIn predicate on the "avg_difficulty" field.
func AvgDifficultyNotIn(vs ...float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldAvgDifficulty, vs...))
}

// AvgDifficultyGT applies the GT predicate on the "avg_difficulty" field.
func AvgDifficultyGT(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldAvgDifficulty, v))
}

// AvgDifficultyGTE applies the GTE predicate on the "avg_difficulty" field.
func AvgDifficultyGTE(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldAvgDifficulty, v))
}

// AvgDifficultyLT applies the LT predicate on the "avg_difficulty" field.
func AvgDifficultyLT(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldAvgDifficulty, v))
}

// AvgDifficultyLTE applies the LTE predicate on the "avg_difficulty" field.
func AvgDifficultyLTE(v float64) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldAvgDifficulty, v))
}

// MaxDifficultyEQ applies the EQ predicate on the "max_difficulty" field.
func MaxDifficultyEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldMaxDifficulty, v))
}

// MaxDifficultyNEQ applies the NEQ predicate on the "max_difficulty" field.
func MaxDifficultyNEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldMaxDifficulty, v))
}

// MaxDifficultyIn applies the In predicate on the "max_difficulty" field.
func MaxDifficultyIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldMaxDifficulty, vs...))
}

// MaxDifficultyNotIn applies the NotIn predicate on the "max_difficulty" field.
func MaxDifficultyNotIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldMaxDifficulty, vs...))
}

// MaxDifficultyGT applies the GT predicate on the "max_difficulty" field.
func MaxDifficultyGT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldMaxDifficulty, v))
}

// MaxDifficultyGTE applies the GTE predicate on the "max_difficulty" field.
func MaxDifficultyGTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldMaxDifficulty, v))
}

// MaxDifficultyLT applies the LT predicate on the "max_difficulty" field.
func MaxDifficultyLT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldMaxDifficulty, v))
}

// MaxDifficultyLTE applies the LTE predicate on the "max_difficulty" field.
func MaxDifficultyLTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldMaxDifficulty, v))
}

// StruggleAreaEQ applies the EQ predicate on the "struggle_area" field.
func StruggleAreaEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldStruggleArea, v))
}

// StruggleAreaNEQ applies the NEQ predicate on the "struggle_area" field.
func StruggleAreaNEQ(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldStruggleArea, v))
}

// StruggleAreaIn applies the In predicate on the "struggle_area" field.
func StruggleAreaIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldStruggleArea, vs...))
}

// StruggleAreaNotIn applies the NotIn predicate on the "struggle_area" field.
func StruggleAreaNotIn(vs ...string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldStruggleArea, vs...))
}

// StruggleAreaGT applies the GT predicate on the "struggle_area" field.
func StruggleAreaGT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldStruggleArea, v))
}

// StruggleAreaGTE applies the GTE predicate on the "struggle_area" field.
func StruggleAreaGTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldStruggleArea, v))
}

// StruggleAreaLT applies the LT predicate on the "struggle_area" field.
func StruggleAreaLT(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldStruggleArea, v))
}

// StruggleAreaLTE applies the LTE predicate on the "struggle_area" field.
func StruggleAreaLTE(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldStruggleArea, v))
}

// StruggleAreaContains applies the Contains predicate on the "struggle_area" field.
func StruggleAreaContains(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContains(FieldStruggleArea, v))
}

// StruggleAreaHasPrefix applies the HasPrefix predicate on the "struggle_area" field.
func StruggleAreaHasPrefix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasPrefix(FieldStruggleArea, v))
}

// StruggleAreaHasSuffix applies the HasSuffix predicate on the "struggle_area" field.
func StruggleAreaHasSuffix(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldHasSuffix(FieldStruggleArea, v))
}

// StruggleAreaIsNil applies the IsNil predicate on the "struggle_area" field.
func StruggleAreaIsNil() predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIsNull(FieldStruggleArea))
}

// StruggleAreaNotNil applies the NotNil predicate on the "struggle_area" field.
func StruggleAreaNotNil() predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotNull(FieldStruggleArea))
}

// StruggleAreaEqualFold applies the EqualFold predicate on the "struggle_area" field.
func StruggleAreaEqualFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEqualFold(FieldStruggleArea, v))
}

// StruggleAreaContainsFold applies the ContainsFold predicate on the "struggle_area" field.
func StruggleAreaContainsFold(v string) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldContainsFold(FieldStruggleArea, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v int) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.FieldLTE(FieldComplexity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptMastery) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptMastery) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptMastery) predicate.ConceptMastery {
	return predicate.ConceptMastery(sql.NotPredicates(p))
}
