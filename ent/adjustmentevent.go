// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
)

// AdjustmentEvent is the model entity for the AdjustmentEvent schema.
type AdjustmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonically increasing sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Level before the decision
	PreviousLevel int `json:"previous_level,omitempty"`
	// Level after the decision
	NewLevel int `json:"new_level,omitempty"`
	// increase, decrease, or maintain
	AdjustmentType string `json:"adjustment_type,omitempty"`
	// Human-readable reasoning
	Reason string `json:"reason,omitempty"`
	// answer, manual, or session_start
	TriggeredBy string `json:"triggered_by,omitempty"`
	// ScaffoldingRecommended holds the value of the "scaffolding_recommended" field.
	ScaffoldingRecommended bool `json:"scaffolding_recommended,omitempty"`
	selectValues           sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdjustmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adjustmentevent.FieldScaffoldingRecommended:
			values[i] = new(sql.NullBool)
		case adjustmentevent.FieldID, adjustmentevent.FieldSequence, adjustmentevent.FieldPreviousLevel, adjustmentevent.FieldNewLevel:
			values[i] = new(sql.NullInt64)
		case adjustmentevent.FieldUserID, adjustmentevent.FieldSessionID, adjustmentevent.FieldAdjustmentType, adjustmentevent.FieldReason, adjustmentevent.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case adjustmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdjustmentEvent fields.
func (_m *AdjustmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adjustmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adjustmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adjustmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adjustmentevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case adjustmentevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case adjustmentevent.FieldPreviousLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_level", values[i])
			} else if value.Valid {
				_m.PreviousLevel = int(value.Int64)
			}
		case adjustmentevent.FieldNewLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_level", values[i])
			} else if value.Valid {
				_m.NewLevel = int(value.Int64)
			}
		case adjustmentevent.FieldAdjustmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment_type", values[i])
			} else if value.Valid {
				_m.AdjustmentType = value.String
			}
		case adjustmentevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case adjustmentevent.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case adjustmentevent.FieldScaffoldingRecommended:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field scaffolding_recommended", values[i])
			} else if value.Valid {
				_m.ScaffoldingRecommended = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdjustmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdjustmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdjustmentEvent.
// Note that you need to call AdjustmentEvent.Unwrap() before calling this method if this AdjustmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdjustmentEvent) Update() *AdjustmentEventUpdateOne {
	return NewAdjustmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdjustmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdjustmentEvent) Unwrap() *AdjustmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdjustmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdjustmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdjustmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("previous_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousLevel))
	builder.WriteString(", ")
	builder.WriteString("new_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewLevel))
	builder.WriteString(", ")
	builder.WriteString("adjustment_type=")
	builder.WriteString(_m.AdjustmentType)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("scaffolding_recommended=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScaffoldingRecommended))
	builder.WriteByte(')')
	return builder.String()
}

// AdjustmentEvents is a parsable slice of AdjustmentEvent.
type AdjustmentEvents []*AdjustmentEvent
