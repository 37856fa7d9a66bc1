// Code generated by ent, DO NOT EDIT.

package conceptmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conceptmastery type in the database.
	Label = "concept_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptName holds the string denoting the concept_name field in the database.
	FieldConceptName = "concept_name"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldTimesSeen holds the string denoting the times_seen field in the database.
	FieldTimesSeen = "times_seen"
	// FieldTimesCorrect holds the string denoting the times_correct field in the database.
	FieldTimesCorrect = "times_correct"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldKnowledgeType holds the string denoting the knowledge_type field in the database.
	FieldKnowledgeType = "knowledge_type"
	// FieldAvgDifficulty holds the string denoting the avg_difficulty field in the database.
	FieldAvgDifficulty = "avg_difficulty"
	// FieldMaxDifficulty holds the string denoting the max_difficulty field in the database.
	FieldMaxDifficulty = "max_difficulty"
	// FieldStruggleArea holds the string denoting the struggle_area field in the database.
	FieldStruggleArea = "struggle_area"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// Table holds the table name of the conceptmastery in the database.
	Table = "concept_masteries"
)

// Columns holds all SQL columns for conceptmastery fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldConceptName,
	FieldMasteryLevel,
	FieldTimesSeen,
	FieldTimesCorrect,
	FieldLastSeen,
	FieldKnowledgeType,
	FieldAvgDifficulty,
	FieldMaxDifficulty,
	FieldStruggleArea,
	FieldComplexity,
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
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel float64
	// DefaultTimesSeen holds the default value on creation for the "times_seen" field.
	DefaultTimesSeen int
	// DefaultTimesCorrect holds the default value on creation for the "times_correct" field.
	DefaultTimesCorrect int
	// DefaultKnowledgeType holds the default value on creation for the "knowledge_type" field.
	DefaultKnowledgeType string
	// DefaultAvgDifficulty holds the default value on creation for the "avg_difficulty" field.
	DefaultAvgDifficulty float64
	// DefaultMaxDifficulty holds the default value on creation for the "max_difficulty" field.
	DefaultMaxDifficulty int
	// DefaultComplexity holds the default value on creation for the "complexity" field.
	DefaultComplexity int
	// ComplexityValidator is a validator for the "complexity" field. It is called by the builders before save.
	ComplexityValidator func(int) error
)

// OrderOption defines the ordering options for the ConceptMastery queries.
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

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByTimesSeen orders the results by the times_seen field.
func ByTimesSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesSeen, opts...).ToFunc()
}

// ByTimesCorrect orders the results by the times_correct field.
func ByTimesCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesCorrect, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByKnowledgeType orders the results by the knowledge_type field.
func ByKnowledgeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeType, opts...).ToFunc()
}

// ByAvgDifficulty orders the results by the avg_difficulty field.
func ByAvgDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDifficulty, opts...).ToFunc()
}

// ByMaxDifficulty orders the results by the max_difficulty field.
func ByMaxDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDifficulty, opts...).ToFunc()
}

// ByStruggleArea orders the results by the struggle_area field.
func ByStruggleArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStruggleArea, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}
