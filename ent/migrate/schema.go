// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdjustmentEventsColumns holds the columns for the "adjustment_events" table.
	AdjustmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "previous_level", Type: field.TypeInt},
		{Name: "new_level", Type: field.TypeInt},
		{Name: "adjustment_type", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "scaffolding_recommended", Type: field.TypeBool, Default: false},
	}
	// AdjustmentEventsTable holds the schema information for the "adjustment_events" table.
	AdjustmentEventsTable = &schema.Table{
		Name:       "adjustment_events",
		Columns:    AdjustmentEventsColumns,
		PrimaryKey: []*schema.Column{AdjustmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adjustmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[1]},
			},
			{
				Name:    "adjustmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[2]},
			},
			{
				Name:    "adjustmentevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[3]},
			},
			{
				Name:    "adjustmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AdjustmentEventsColumns[4]},
			},
		},
	}
	// ConceptMasteriesColumns holds the columns for the "concept_masteries" table.
	ConceptMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_name", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "times_seen", Type: field.TypeInt, Default: 0},
		{Name: "times_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
		{Name: "knowledge_type", Type: field.TypeString, Default: ""},
		{Name: "avg_difficulty", Type: field.TypeFloat64, Default: 3},
		{Name: "max_difficulty", Type: field.TypeInt, Default: 1},
		{Name: "struggle_area", Type: field.TypeString, Nullable: true},
		{Name: "complexity", Type: field.TypeInt, Default: 3},
	}
	// ConceptMasteriesTable holds the schema information for the "concept_masteries" table.
	ConceptMasteriesTable = &schema.Table{
		Name:       "concept_masteries",
		Columns:    ConceptMasteriesColumns,
		PrimaryKey: []*schema.Column{ConceptMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptmastery_user_id_concept_name",
				Unique:  true,
				Columns: []*schema.Column{ConceptMasteriesColumns[1], ConceptMasteriesColumns[2]},
			},
			{
				Name:    "conceptmastery_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptMasteriesColumns[1]},
			},
		},
	}
	// KnowledgeGapsColumns holds the columns for the "knowledge_gaps" table.
	KnowledgeGapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_name", Type: field.TypeString},
		{Name: "gap_type", Type: field.TypeString},
		{Name: "identified_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "related_concepts", Type: field.TypeJSON, Nullable: true},
	}
	// KnowledgeGapsTable holds the schema information for the "knowledge_gaps" table.
	KnowledgeGapsTable = &schema.Table{
		Name:       "knowledge_gaps",
		Columns:    KnowledgeGapsColumns,
		PrimaryKey: []*schema.Column{KnowledgeGapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgegap_user_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeGapsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PerformanceEventsColumns holds the columns for the "performance_events" table.
	PerformanceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeInt, Nullable: true},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "response_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "difficulty_level", Type: field.TypeInt},
		{Name: "concept_tested", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "in_optimal_zone", Type: field.TypeBool, Default: false},
	}
	// PerformanceEventsTable holds the schema information for the "performance_events" table.
	PerformanceEventsTable = &schema.Table{
		Name:       "performance_events",
		Columns:    PerformanceEventsColumns,
		PrimaryKey: []*schema.Column{PerformanceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performanceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PerformanceEventsColumns[1]},
			},
			{
				Name:    "performanceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PerformanceEventsColumns[2]},
			},
			{
				Name:    "performanceevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PerformanceEventsColumns[3]},
			},
			{
				Name:    "performanceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PerformanceEventsColumns[4]},
			},
			{
				Name:    "performanceevent_concept_tested",
				Unique:  false,
				Columns: []*schema.Column{PerformanceEventsColumns[11]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "total_mistakes", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "question_details", Type: field.TypeJSON, Nullable: true},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_topic",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3]},
			},
		},
	}
	// SessionSnapshotsColumns holds the columns for the "session_snapshots" table.
	SessionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SessionSnapshotsTable holds the schema information for the "session_snapshots" table.
	SessionSnapshotsTable = &schema.Table{
		Name:       "session_snapshots",
		Columns:    SessionSnapshotsColumns,
		PrimaryKey: []*schema.Column{SessionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsnapshot_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[1]},
			},
			{
				Name:    "sessionsnapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[2]},
			},
			{
				Name:    "sessionsnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdjustmentEventsTable,
		ConceptMasteriesTable,
		KnowledgeGapsTable,
		LlmRequestEventsTable,
		PerformanceEventsTable,
		QuizResultsTable,
		SessionSnapshotsTable,
	}
)

func init() {
}
