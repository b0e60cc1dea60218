// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradeLevelsColumns holds the columns for the "grade_levels" table.
	GradeLevelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "grade_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// GradeLevelsTable holds the schema information for the "grade_levels" table.
	GradeLevelsTable = &schema.Table{
		Name:       "grade_levels",
		Columns:    GradeLevelsColumns,
		PrimaryKey: []*schema.Column{GradeLevelsColumns[0]},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PracticeAnswersColumns holds the columns for the "practice_answers" table.
	PracticeAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "selected_options", Type: field.TypeJSON, Nullable: true},
		{Name: "text", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PracticeAnswersTable holds the schema information for the "practice_answers" table.
	PracticeAnswersTable = &schema.Table{
		Name:       "practice_answers",
		Columns:    PracticeAnswersColumns,
		PrimaryKey: []*schema.Column{PracticeAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceanswer_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeAnswersColumns[1]},
			},
			{
				Name:    "practiceanswer_session_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeAnswersColumns[1], PracticeAnswersColumns[2]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sub_topic_id", Type: field.TypeString},
		{Name: "grade_level_id", Type: field.TypeString},
		{Name: "grade_level_name", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "subject_name", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_name", Type: field.TypeString},
		{Name: "sub_topic_name", Type: field.TypeString},
		{Name: "question_order", Type: field.TypeJSON},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "answered_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Nullable: true},
		{Name: "coins_earned", Type: field.TypeInt, Nullable: true},
		{Name: "summary", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_session_id",
				Unique:  true,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
			{
				Name:    "practicesession_student_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[20]},
			},
			{
				Name:    "practicesession_student_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[21]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "sub_topic_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "image_url", Type: field.TypeString, Default: ""},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "canonical_answer", Type: field.TypeString, Default: ""},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_sub_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
		},
	}
	// QuestionProgressesColumns holds the columns for the "question_progresses" table.
	QuestionProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sub_topic_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "cycle_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionProgressesTable holds the schema information for the "question_progresses" table.
	QuestionProgressesTable = &schema.Table{
		Name:       "question_progresses",
		Columns:    QuestionProgressesColumns,
		PrimaryKey: []*schema.Column{QuestionProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionprogress_student_id_sub_topic_id_question_id_cycle_number",
				Unique:  true,
				Columns: []*schema.Column{QuestionProgressesColumns[1], QuestionProgressesColumns[2], QuestionProgressesColumns[3], QuestionProgressesColumns[4]},
			},
			{
				Name:    "questionprogress_student_id_sub_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionProgressesColumns[1], QuestionProgressesColumns[2]},
			},
		},
	}
	// StudentTiersColumns holds the columns for the "student_tiers" table.
	StudentTiersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "tier", Type: field.TypeString, Default: "free"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentTiersTable holds the schema information for the "student_tiers" table.
	StudentTiersTable = &schema.Table{
		Name:       "student_tiers",
		Columns:    StudentTiersColumns,
		PrimaryKey: []*schema.Column{StudentTiersColumns[0]},
	}
	// SubTopicsColumns holds the columns for the "sub_topics" table.
	SubTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sub_topic_id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// SubTopicsTable holds the schema information for the "sub_topics" table.
	SubTopicsTable = &schema.Table{
		Name:       "sub_topics",
		Columns:    SubTopicsColumns,
		PrimaryKey: []*schema.Column{SubTopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubTopicsColumns[2]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString, Unique: true},
		{Name: "grade_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_grade_id",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_subject_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradeLevelsTable,
		LlmRequestEventsTable,
		PracticeAnswersTable,
		PracticeSessionsTable,
		QuestionsTable,
		QuestionProgressesTable,
		StudentTiersTable,
		SubTopicsTable,
		SubjectsTable,
		TopicsTable,
	}
)

func init() {
}
