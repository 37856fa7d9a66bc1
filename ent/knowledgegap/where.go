// Code generated by ent, DO NOT EDIT.

package knowledgegap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldUserID, v))
}

// ConceptName applies equality check predicate on the "concept_name" field. It's identical to ConceptNameEQ.
func ConceptName(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldConceptName, v))
}

// GapType applies equality check predicate on the "gap_type" field. It's identical to GapTypeEQ.
func GapType(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldGapType, v))
}

// IdentifiedAt applies equality check predicate on the "identified_at" field. It's identical to IdentifiedAtEQ.
func IdentifiedAt(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldIdentifiedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldResolvedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptNameEQ applies the EQ predicate on the "concept_name" field.
func ConceptNameEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldConceptName, v))
}

// ConceptNameNEQ applies the NEQ predicate on the "concept_name" field.
func ConceptNameNEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldConceptName, v))
}

// ConceptNameIn applies the In predicate on the "concept_name" field.
func ConceptNameIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldConceptName, vs...))
}

// ConceptNameNotIn applies the NotIn predicate on the "concept_name" field.
func ConceptNameNotIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldConceptName, vs...))
}

// ConceptNameGT applies the GT predicate on the "concept_name" field.
func ConceptNameGT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldConceptName, v))
}

// ConceptNameGTE applies the GTE predicate on the "concept_name" field.
func ConceptNameGTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldConceptName, v))
}

// ConceptNameLT applies the LT predicate on the "concept_name" field.
func ConceptNameLT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldConceptName, v))
}

// ConceptNameLTE applies the LTE predicate on the "concept_name" field.
func ConceptNameLTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldConceptName, v))
}

// ConceptNameContains applies the Contains predicate on the "concept_name" field.
func ConceptNameContains(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContains(FieldConceptName, v))
}

// ConceptNameHasPrefix applies the HasPrefix predicate on the "concept_name" field.
func ConceptNameHasPrefix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasPrefix(FieldConceptName, v))
}

// ConceptNameHasSuffix applies the HasSuffix predicate on the "concept_name" field.
func ConceptNameHasSuffix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasSuffix(FieldConceptName, v))
}

// ConceptNameEqualFold applies the EqualFold predicate on the "concept_name" field.
func ConceptNameEqualFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEqualFold(FieldConceptName, v))
}

// ConceptNameContainsFold applies the ContainsFold predicate on the "concept_name" field.
func ConceptNameContainsFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContainsFold(FieldConceptName, v))
}

// GapTypeEQ applies the EQ predicate on the "gap_type" field.
func GapTypeEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldGapType, v))
}

// GapTypeNEQ applies the NEQ predicate on the "gap_type" field.
func GapTypeNEQ(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldGapType, v))
}

// GapTypeIn applies the In predicate on the "gap_type" field.
func GapTypeIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldGapType, vs...))
}

// GapTypeNotIn applies the NotIn predicate on the "gap_type" field.
func GapTypeNotIn(vs ...string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldGapType, vs...))
}

// GapTypeGT applies the GT predicate on the "gap_type" field.
func GapTypeGT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldGapType, v))
}

// GapTypeGTE applies the GTE predicate on the "gap_type" field.
func GapTypeGTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldGapType, v))
}

// GapTypeLT applies the LT predicate on the "gap_type" field.
func GapTypeLT(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldGapType, v))
}

// GapTypeLTE applies the LTE predicate on the "gap_type" field.
func GapTypeLTE(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldGapType, v))
}

// GapTypeContains applies the Contains predicate on the "gap_type" field.
func GapTypeContains(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContains(FieldGapType, v))
}

// GapTypeHasPrefix applies the HasPrefix predicate on the "gap_type" field.
func GapTypeHasPrefix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasPrefix(FieldGapType, v))
}

// GapTypeHasSuffix applies the HasSuffix predicate on the "gap_type" field.
func GapTypeHasSuffix(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldHasSuffix(FieldGapType, v))
}

// GapTypeEqualFold applies the EqualFold predicate on the "gap_type" field.
func GapTypeEqualFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEqualFold(FieldGapType, v))
}

// GapTypeContainsFold applies the ContainsFold predicate on the "gap_type" field.
func GapTypeContainsFold(v string) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldContainsFold(FieldGapType, v))
}

// IdentifiedAtEQ applies the EQ predicate on the "identified_at" field.
func IdentifiedAtEQ(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldIdentifiedAt, v))
}

// IdentifiedAtNEQ applies the NEQ predicate on the "identified_at" field.
func IdentifiedAtNEQ(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldIdentifiedAt, v))
}

// IdentifiedAtIn applies the In predicate on the "identified_at" field.
func IdentifiedAtIn(vs ...time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldIdentifiedAt, vs...))
}

// IdentifiedAtNotIn applies the NotIn predicate on the "identified_at" field.
func IdentifiedAtNotIn(vs ...time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldIdentifiedAt, vs...))
}

// IdentifiedAtGT applies the GT predicate on the "identified_at" field.
func IdentifiedAtGT(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldIdentifiedAt, v))
}

// IdentifiedAtGTE applies the GTE predicate on the "identified_at" field.
func IdentifiedAtGTE(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldIdentifiedAt, v))
}

// IdentifiedAtLT applies the LT predicate on the "identified_at" field.
func IdentifiedAtLT(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldIdentifiedAt, v))
}

// IdentifiedAtLTE applies the LTE predicate on the "identified_at" field.
func IdentifiedAtLTE(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldIdentifiedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotNull(FieldResolvedAt))
}

// RelatedConceptsIsNil applies the IsNil predicate on the "related_concepts" field.
func RelatedConceptsIsNil() predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldIsNull(FieldRelatedConcepts))
}

// RelatedConceptsNotNil applies the NotNil predicate on the "related_concepts" field.
func RelatedConceptsNotNil() predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.FieldNotNull(FieldRelatedConcepts))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeGap) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeGap) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeGap) predicate.KnowledgeGap {
	return predicate.KnowledgeGap(sql.NotPredicates(p))
}
