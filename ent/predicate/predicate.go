// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdjustmentEvent is the predicate function for adjustmentevent builders.
type AdjustmentEvent func(*sql.Selector)

// ConceptMastery is the predicate function for conceptmastery builders.
type ConceptMastery func(*sql.Selector)

// KnowledgeGap is the predicate function for knowledgegap builders.
type KnowledgeGap func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PerformanceEvent is the predicate function for performanceevent builders.
type PerformanceEvent func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// SessionSnapshot is the predicate function for sessionsnapshot builders.
type SessionSnapshot func(*sql.Selector)
