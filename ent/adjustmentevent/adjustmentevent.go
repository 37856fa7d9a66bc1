// Code generated by ent, DO NOT EDIT.

package adjustmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adjustmentevent type in the database.
	Label = "adjustment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPreviousLevel holds the string denoting the previous_level field in the database.
	FieldPreviousLevel = "previous_level"
	// FieldNewLevel holds the string denoting the new_level field in the database.
	FieldNewLevel = "new_level"
	// FieldAdjustmentType holds the string denoting the adjustment_type field in the database.
	FieldAdjustmentType = "adjustment_type"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldScaffoldingRecommended holds the string denoting the scaffolding_recommended field in the database.
	FieldScaffoldingRecommended = "scaffolding_recommended"
	// Table holds the table name of the adjustmentevent in the database.
	Table = "adjustment_events"
)

// Columns holds all SQL columns for adjustmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSessionID,
	FieldPreviousLevel,
	FieldNewLevel,
	FieldAdjustmentType,
	FieldReason,
	FieldTriggeredBy,
	FieldScaffoldingRecommended,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	AdjustmentTypeValidator func(string) error
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// TriggeredByValidator is a validator for the "triggered_by" field. It is called by the builders before save.
	TriggeredByValidator func(string) error
	// DefaultScaffoldingRecommended holds the default value on creation for the "scaffolding_recommended" field.
	DefaultScaffoldingRecommended bool
)

// OrderOption defines the ordering options for the AdjustmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPreviousLevel orders the results by the previous_level field.
func ByPreviousLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousLevel, opts...).ToFunc()
}

// ByNewLevel orders the results by the new_level field.
func ByNewLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewLevel, opts...).ToFunc()
}

// ByAdjustmentType orders the results by the adjustment_type field.
func ByAdjustmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustmentType, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByScaffoldingRecommended orders the results by the scaffolding_recommended field.
func ByScaffoldingRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScaffoldingRecommended, opts...).ToFunc()
}
