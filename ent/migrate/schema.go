// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIRequestEventsColumns holds the columns for the "api_request_events" table.
	APIRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "operation", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// APIRequestEventsTable holds the schema information for the "api_request_events" table.
	APIRequestEventsTable = &schema.Table{
		Name:       "api_request_events",
		Columns:    APIRequestEventsColumns,
		PrimaryKey: []*schema.Column{APIRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apirequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[1]},
			},
			{
				Name:    "apirequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[2]},
			},
			{
				Name:    "apirequestevent_operation",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[3]},
			},
			{
				Name:    "apirequestevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[4]},
			},
			{
				Name:    "apirequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "chapter", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "class_name", Type: field.TypeString, Default: ""},
		{Name: "class_level", Type: field.TypeInt, Default: 0},
		{Name: "subtopics", Type: field.TypeJSON, Nullable: true},
		{Name: "mastery_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "questions_asked", Type: field.TypeInt, Default: 0},
		{Name: "intervention_count", Type: field.TypeInt, Default: 0},
		{Name: "stop_reason", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "preset", Type: field.TypeString, Default: ""},
		{Name: "response_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "question_consistency", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "outcome", Type: field.TypeString, Default: ""},
		{Name: "next_action", Type: field.TypeString, Default: ""},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIRequestEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
