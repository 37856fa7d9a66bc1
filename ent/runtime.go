// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rahulsv/studyloop/ent/adjustmentevent"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
	"github.com/rahulsv/studyloop/ent/llmrequestevent"
	"github.com/rahulsv/studyloop/ent/performanceevent"
	"github.com/rahulsv/studyloop/ent/quizresult"
	"github.com/rahulsv/studyloop/ent/schema"
	"github.com/rahulsv/studyloop/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adjustmenteventMixin := schema.AdjustmentEvent{}.Mixin()
	adjustmenteventMixinFields0 := adjustmenteventMixin[0].Fields()
	_ = adjustmenteventMixinFields0
	adjustmenteventFields := schema.AdjustmentEvent{}.Fields()
	_ = adjustmenteventFields
	// adjustmenteventDescTimestamp is the schema descriptor for timestamp field.
	adjustmenteventDescTimestamp := adjustmenteventMixinFields0[1].Descriptor()
	// adjustmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adjustmentevent.DefaultTimestamp = adjustmenteventDescTimestamp.Default.(func() time.Time)
	// adjustmenteventDescUserID is the schema descriptor for user_id field.
	adjustmenteventDescUserID := adjustmenteventFields[0].Descriptor()
	// adjustmentevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adjustmentevent.UserIDValidator = adjustmenteventDescUserID.Validators[0].(func(string) error)
	// adjustmenteventDescSessionID is the schema descriptor for session_id field.
	adjustmenteventDescSessionID := adjustmenteventFields[1].Descriptor()
	// adjustmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	adjustmentevent.SessionIDValidator = adjustmenteventDescSessionID.Validators[0].(func(string) error)
	// adjustmenteventDescAdjustmentType is the schema descriptor for adjustment_type field.
	adjustmenteventDescAdjustmentType := adjustmenteventFields[4].Descriptor()
	// adjustmentevent.AdjustmentTypeValidator is a validator for the "adjustment_type" field. It is called by the builders before save.
	adjustmentevent.AdjustmentTypeValidator = adjustmenteventDescAdjustmentType.Validators[0].(func(string) error)
	// adjustmenteventDescReason is the schema descriptor for reason field.
	adjustmenteventDescReason := adjustmenteventFields[5].Descriptor()
	// adjustmentevent.DefaultReason holds the default value on creation for the reason field.
	adjustmentevent.DefaultReason = adjustmenteventDescReason.Default.(string)
	// adjustmenteventDescTriggeredBy is the schema descriptor for triggered_by field.
	adjustmenteventDescTriggeredBy := adjustmenteventFields[6].Descriptor()
	// adjustmentevent.TriggeredByValidator is a validator for the "triggered_by" field. It is called by the builders before save.
	adjustmentevent.TriggeredByValidator = adjustmenteventDescTriggeredBy.Validators[0].(func(string) error)
	// adjustmenteventDescScaffoldingRecommended is the schema descriptor for scaffolding_recommended field.
	adjustmenteventDescScaffoldingRecommended := adjustmenteventFields[7].Descriptor()
	// adjustmentevent.DefaultScaffoldingRecommended holds the default value on creation for the scaffolding_recommended field.
	adjustmentevent.DefaultScaffoldingRecommended = adjustmenteventDescScaffoldingRecommended.Default.(bool)
	conceptmasteryFields := schema.ConceptMastery{}.Fields()
	_ = conceptmasteryFields
	// conceptmasteryDescUserID is the schema descriptor for user_id field.
	conceptmasteryDescUserID := conceptmasteryFields[0].Descriptor()
	// conceptmastery.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conceptmastery.UserIDValidator = conceptmasteryDescUserID.Validators[0].(func(string) error)
	// conceptmasteryDescConceptName is the schema descriptor for concept_name field.
	conceptmasteryDescConceptName := conceptmasteryFields[1].Descriptor()
	// conceptmastery.ConceptNameValidator is a validator for the "concept_name" field. It is called by the builders before save.
	conceptmastery.ConceptNameValidator = conceptmasteryDescConceptName.Validators[0].(func(string) error)
	// conceptmasteryDescMasteryLevel is the schema descriptor for mastery_level field.
	conceptmasteryDescMasteryLevel := conceptmasteryFields[2].Descriptor()
	// conceptmastery.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	conceptmastery.DefaultMasteryLevel = conceptmasteryDescMasteryLevel.Default.(float64)
	// conceptmasteryDescTimesSeen is the schema descriptor for times_seen field.
	conceptmasteryDescTimesSeen := conceptmasteryFields[3].Descriptor()
	// conceptmastery.DefaultTimesSeen holds the default value on creation for the times_seen field.
	conceptmastery.DefaultTimesSeen = conceptmasteryDescTimesSeen.Default.(int)
	// conceptmasteryDescTimesCorrect is the schema descriptor for times_correct field.
	conceptmasteryDescTimesCorrect := conceptmasteryFields[4].Descriptor()
	// conceptmastery.DefaultTimesCorrect holds the default value on creation for the times_correct field.
	conceptmastery.DefaultTimesCorrect = conceptmasteryDescTimesCorrect.Default.(int)
	// conceptmasteryDescKnowledgeType is the schema descriptor for knowledge_type field.
	conceptmasteryDescKnowledgeType := conceptmasteryFields[6].Descriptor()
	// conceptmastery.DefaultKnowledgeType holds the default value on creation for the knowledge_type field.
	conceptmastery.DefaultKnowledgeType = conceptmasteryDescKnowledgeType.Default.(string)
	// conceptmasteryDescAvgDifficulty is the schema descriptor for avg_difficulty field.
	conceptmasteryDescAvgDifficulty := conceptmasteryFields[7].Descriptor()
	// conceptmastery.DefaultAvgDifficulty holds the default value on creation for the avg_difficulty field.
	conceptmastery.DefaultAvgDifficulty = conceptmasteryDescAvgDifficulty.Default.(float64)
	// conceptmasteryDescMaxDifficulty is the schema descriptor for max_difficulty field.
	conceptmasteryDescMaxDifficulty := conceptmasteryFields[8].Descriptor()
	// conceptmastery.DefaultMaxDifficulty holds the default value on creation for the max_difficulty field.
	conceptmastery.DefaultMaxDifficulty = conceptmasteryDescMaxDifficulty.Default.(int)
	// conceptmasteryDescComplexity is the schema descriptor for complexity field.
	conceptmasteryDescComplexity := conceptmasteryFields[10].Descriptor()
	// conceptmastery.DefaultComplexity holds the default value on creation for the complexity field.
	conceptmastery.DefaultComplexity = conceptmasteryDescComplexity.Default.(int)
	// conceptmastery.ComplexityValidator is a validator for the "complexity" field. It is called by the builders before save.
	conceptmastery.ComplexityValidator = conceptmasteryDescComplexity.Validators[0].(func(int) error)
	knowledgegapFields := schema.KnowledgeGap{}.Fields()
	_ = knowledgegapFields
	// knowledgegapDescUserID is the schema descriptor for user_id field.
	knowledgegapDescUserID := knowledgegapFields[0].Descriptor()
	// knowledgegap.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	knowledgegap.UserIDValidator = knowledgegapDescUserID.Validators[0].(func(string) error)
	// knowledgegapDescConceptName is the schema descriptor for concept_name field.
	knowledgegapDescConceptName := knowledgegapFields[1].Descriptor()
	// knowledgegap.ConceptNameValidator is a validator for the "concept_name" field. It is called by the builders before save.
	knowledgegap.ConceptNameValidator = knowledgegapDescConceptName.Validators[0].(func(string) error)
	// knowledgegapDescGapType is the schema descriptor for gap_type field.
	knowledgegapDescGapType := knowledgegapFields[2].Descriptor()
	// knowledgegap.GapTypeValidator is a validator for the "gap_type" field. It is called by the builders before save.
	knowledgegap.GapTypeValidator = knowledgegapDescGapType.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	performanceeventMixin := schema.PerformanceEvent{}.Mixin()
	performanceeventMixinFields0 := performanceeventMixin[0].Fields()
	_ = performanceeventMixinFields0
	performanceeventFields := schema.PerformanceEvent{}.Fields()
	_ = performanceeventFields
	// performanceeventDescTimestamp is the schema descriptor for timestamp field.
	performanceeventDescTimestamp := performanceeventMixinFields0[1].Descriptor()
	// performanceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	performanceevent.DefaultTimestamp = performanceeventDescTimestamp.Default.(func() time.Time)
	// performanceeventDescUserID is the schema descriptor for user_id field.
	performanceeventDescUserID := performanceeventFields[0].Descriptor()
	// performanceevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performanceevent.UserIDValidator = performanceeventDescUserID.Validators[0].(func(string) error)
	// performanceeventDescSessionID is the schema descriptor for session_id field.
	performanceeventDescSessionID := performanceeventFields[1].Descriptor()
	// performanceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	performanceevent.SessionIDValidator = performanceeventDescSessionID.Validators[0].(func(string) error)
	// performanceeventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	performanceeventDescResponseTimeMs := performanceeventFields[5].Descriptor()
	// performanceevent.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	performanceevent.DefaultResponseTimeMs = performanceeventDescResponseTimeMs.Default.(int)
	// performanceeventDescHintsUsed is the schema descriptor for hints_used field.
	performanceeventDescHintsUsed := performanceeventFields[6].Descriptor()
	// performanceevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	performanceevent.DefaultHintsUsed = performanceeventDescHintsUsed.Default.(int)
	// performanceeventDescConceptTested is the schema descriptor for concept_tested field.
	performanceeventDescConceptTested := performanceeventFields[8].Descriptor()
	// performanceevent.ConceptTestedValidator is a validator for the "concept_tested" field. It is called by the builders before save.
	performanceevent.ConceptTestedValidator = performanceeventDescConceptTested.Validators[0].(func(string) error)
	// performanceeventDescQuestionType is the schema descriptor for question_type field.
	performanceeventDescQuestionType := performanceeventFields[9].Descriptor()
	// performanceevent.DefaultQuestionType holds the default value on creation for the question_type field.
	performanceevent.DefaultQuestionType = performanceeventDescQuestionType.Default.(string)
	// performanceeventDescInOptimalZone is the schema descriptor for in_optimal_zone field.
	performanceeventDescInOptimalZone := performanceeventFields[10].Descriptor()
	// performanceevent.DefaultInOptimalZone holds the default value on creation for the in_optimal_zone field.
	performanceevent.DefaultInOptimalZone = performanceeventDescInOptimalZone.Default.(bool)
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescUserID is the schema descriptor for user_id field.
	quizresultDescUserID := quizresultFields[0].Descriptor()
	// quizresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizresult.UserIDValidator = quizresultDescUserID.Validators[0].(func(string) error)
	// quizresultDescSessionID is the schema descriptor for session_id field.
	quizresultDescSessionID := quizresultFields[1].Descriptor()
	// quizresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresult.SessionIDValidator = quizresultDescSessionID.Validators[0].(func(string) error)
	// quizresultDescTopic is the schema descriptor for topic field.
	quizresultDescTopic := quizresultFields[2].Descriptor()
	// quizresult.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizresult.TopicValidator = quizresultDescTopic.Validators[0].(func(string) error)
	// quizresultDescTotalQuestions is the schema descriptor for total_questions field.
	quizresultDescTotalQuestions := quizresultFields[3].Descriptor()
	// quizresult.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	quizresult.DefaultTotalQuestions = quizresultDescTotalQuestions.Default.(int)
	// quizresultDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizresultDescCorrectAnswers := quizresultFields[4].Descriptor()
	// quizresult.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizresult.DefaultCorrectAnswers = quizresultDescCorrectAnswers.Default.(int)
	// quizresultDescTotalMistakes is the schema descriptor for total_mistakes field.
	quizresultDescTotalMistakes := quizresultFields[5].Descriptor()
	// quizresult.DefaultTotalMistakes holds the default value on creation for the total_mistakes field.
	quizresult.DefaultTotalMistakes = quizresultDescTotalMistakes.Default.(int)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescUserID is the schema descriptor for user_id field.
	sessionsnapshotDescUserID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionsnapshot.UserIDValidator = sessionsnapshotDescUserID.Validators[0].(func(string) error)
	// sessionsnapshotDescSessionID is the schema descriptor for session_id field.
	sessionsnapshotDescSessionID := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsnapshot.SessionIDValidator = sessionsnapshotDescSessionID.Validators[0].(func(string) error)
	// sessionsnapshotDescTimestamp is the schema descriptor for timestamp field.
	sessionsnapshotDescTimestamp := sessionsnapshotFields[3].Descriptor()
	// sessionsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionsnapshot.DefaultTimestamp = sessionsnapshotDescTimestamp.Default.(func() time.Time)
}
