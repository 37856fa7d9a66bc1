// Code generated by ent, DO NOT EDIT.

package knowledgegap

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knowledgegap type in the database.
	Label = "knowledge_gap"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptName holds the string denoting the concept_name field in the database.
	FieldConceptName = "concept_name"
	// FieldGapType holds the string denoting the gap_type field in the database.
	FieldGapType = "gap_type"
	// FieldIdentifiedAt holds the string denoting the identified_at field in the database.
	FieldIdentifiedAt = "identified_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldRelatedConcepts holds the string denoting the related_concepts field in the database.
	FieldRelatedConcepts = "related_concepts"
	// Table holds the table name of the knowledgegap in the database.
	Table = "knowledge_gaps"
)

// Columns holds all SQL columns for knowledgegap fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldConceptName,
	FieldGapType,
	FieldIdentifiedAt,
	FieldResolvedAt,
	FieldRelatedConcepts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ConceptNameValidator is a validator for the "concept_name" field. It is called by the builders before save.
	ConceptNameValidator func(string) error
	// GapTypeValidator is a validator for the "gap_type" field. It is called by the builders before save.
	GapTypeValidator func(string) error
)

// OrderOption defines the ordering options for the KnowledgeGap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptName orders the results by the concept_name field.
func ByConceptName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptName, opts...).ToFunc()
}

// ByGapType orders the results by the gap_type field.
func ByGapType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapType, opts...).ToFunc()
}

// ByIdentifiedAt orders the results by the identified_at field.
func ByIdentifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentifiedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
