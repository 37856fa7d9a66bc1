// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
)

// ConceptMastery is the model entity for the ConceptMastery schema.
type ConceptMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptName holds the value of the "concept_name" field.
	ConceptName string `json:"concept_name,omitempty"`
	// times_correct / times_seen, in [0.0, 1.0]
	MasteryLevel float64 `json:"mastery_level,omitempty"`
	// TimesSeen holds the value of the "times_seen" field.
	TimesSeen int `json:"times_seen,omitempty"`
	// TimesCorrect holds the value of the "times_correct" field.
	TimesCorrect int `json:"times_correct,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// declarative, procedural, or conditional
	KnowledgeType string `json:"knowledge_type,omitempty"`
	// Running average of levels this concept was answered at
	AvgDifficulty float64 `json:"avg_difficulty,omitempty"`
	// Highest level answered correctly
	MaxDifficulty int `json:"max_difficulty,omitempty"`
	// Last detected struggle area, if scaffolding fired
	StruggleArea string `json:"struggle_area,omitempty"`
	// Inherent concept complexity, scales adjustment thresholds
	Complexity   int `json:"complexity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conceptmastery.FieldMasteryLevel, conceptmastery.FieldAvgDifficulty:
			values[i] = new(sql.NullFloat64)
		case conceptmastery.FieldID, conceptmastery.FieldTimesSeen, conceptmastery.FieldTimesCorrect, conceptmastery.FieldMaxDifficulty, conceptmastery.FieldComplexity:
			values[i] = new(sql.NullInt64)
		case conceptmastery.FieldUserID, conceptmastery.FieldConceptName, conceptmastery.FieldKnowledgeType, conceptmastery.FieldStruggleArea:
			values[i] = new(sql.NullString)
		case conceptmastery.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptMastery fields.
func (_m *ConceptMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conceptmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conceptmastery.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case conceptmastery.FieldConceptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_name", values[i])
			} else if value.Valid {
				_m.ConceptName = value.String
			}
		case conceptmastery.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.Float64
			}
		case conceptmastery.FieldTimesSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_seen", values[i])
			} else if value.Valid {
				_m.TimesSeen = int(value.Int64)
			}
		case conceptmastery.FieldTimesCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_correct", values[i])
			} else if value.Valid {
				_m.TimesCorrect = int(value.Int64)
			}
		case conceptmastery.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case conceptmastery.FieldKnowledgeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_type", values[i])
			} else if value.Valid {
				_m.KnowledgeType = value.String
			}
		case conceptmastery.FieldAvgDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_difficulty", values[i])
			} else if value.Valid {
				_m.AvgDifficulty = value.Float64
			}
		case conceptmastery.FieldMaxDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_difficulty", values[i])
			} else if value.Valid {
				_m.MaxDifficulty = int(value.Int64)
			}
		case conceptmastery.FieldStruggleArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field struggle_area", values[i])
			} else if value.Valid {
				_m.StruggleArea = value.String
			}
		case conceptmastery.FieldComplexity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptMastery.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptMastery.
// Note that you need to call ConceptMastery.Unwrap() before calling this method if this ConceptMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptMastery) Update() *ConceptMasteryUpdateOne {
	return NewConceptMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptMastery) Unwrap() *ConceptMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptMastery) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_name=")
	builder.WriteString(_m.ConceptName)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("times_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesSeen))
	builder.WriteString(", ")
	builder.WriteString("times_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("knowledge_type=")
	builder.WriteString(_m.KnowledgeType)
	builder.WriteString(", ")
	builder.WriteString("avg_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgDifficulty))
	builder.WriteString(", ")
	builder.WriteString("max_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDifficulty))
	builder.WriteString(", ")
	builder.WriteString("struggle_area=")
	builder.WriteString(_m.StruggleArea)
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Complexity))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptMasteries is a parsable slice of ConceptMastery.
type ConceptMasteries []*ConceptMastery
