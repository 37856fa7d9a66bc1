// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
)

// KnowledgeGap is the model entity for the KnowledgeGap schema.
type KnowledgeGap struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptName holds the value of the "concept_name" field.
	ConceptName string `json:"concept_name,omitempty"`
	// missing, weak, or misconception
	GapType string `json:"gap_type,omitempty"`
	// IdentifiedAt holds the value of the "identified_at" field.
	IdentifiedAt time.Time `json:"identified_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
	// RelatedConcepts holds the value of the "related_concepts" field.
	RelatedConcepts []string `json:"related_concepts,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeGap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgegap.FieldRelatedConcepts:
			values[i] = new([]byte)
		case knowledgegap.FieldID:
			values[i] = new(sql.NullInt64)
		case knowledgegap.FieldUserID, knowledgegap.FieldConceptName, knowledgegap.FieldGapType:
			values[i] = new(sql.NullString)
		case knowledgegap.FieldIdentifiedAt, knowledgegap.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeGap fields.
func (_m *KnowledgeGap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgegap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case knowledgegap.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case knowledgegap.FieldConceptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_name", values[i])
			} else if value.Valid {
				_m.ConceptName = value.String
			}
		case knowledgegap.FieldGapType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gap_type", values[i])
			} else if value.Valid {
				_m.GapType = value.String
			}
		case knowledgegap.FieldIdentifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field identified_at", values[i])
			} else if value.Valid {
				_m.IdentifiedAt = value.Time
			}
		case knowledgegap.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = value.Time
			}
		case knowledgegap.FieldRelatedConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedConcepts); err != nil {
					return fmt.Errorf("unmarshal field related_concepts: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeGap.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeGap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeGap.
// Note that you need to call KnowledgeGap.Unwrap() before calling this method if this KnowledgeGap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeGap) Update() *KnowledgeGapUpdateOne {
	return NewKnowledgeGapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeGap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeGap) Unwrap() *KnowledgeGap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeGap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeGap) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeGap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_name=")
	builder.WriteString(_m.ConceptName)
	builder.WriteString(", ")
	builder.WriteString("gap_type=")
	builder.WriteString(_m.GapType)
	builder.WriteString(", ")
	builder.WriteString("identified_at=")
	builder.WriteString(_m.IdentifiedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("resolved_at=")
	builder.WriteString(_m.ResolvedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("related_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedConcepts))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeGaps is a parsable slice of KnowledgeGap.
type KnowledgeGaps []*KnowledgeGap
