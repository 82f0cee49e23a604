// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submissionevent type in the database.
	Label = "submission_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldSubtopic holds the string denoting the subtopic field in the database.
	FieldSubtopic = "subtopic"
	// FieldPreset holds the string denoting the preset field in the database.
	FieldPreset = "preset"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldQuestionConsistency holds the string denoting the question_consistency field in the database.
	FieldQuestionConsistency = "question_consistency"
	// FieldMasteryPercentage holds the string denoting the mastery_percentage field in the database.
	FieldMasteryPercentage = "mastery_percentage"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldNextAction holds the string denoting the next_action field in the database.
	FieldNextAction = "next_action"
	// Table holds the table name of the submissionevent in the database.
	Table = "submission_events"
)

// Columns holds all SQL columns for submissionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionID,
	FieldSubtopic,
	FieldPreset,
	FieldResponseCount,
	FieldCorrectCount,
	FieldQuestionConsistency,
	FieldMasteryPercentage,
	FieldOutcome,
	FieldNextAction,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultSubtopic holds the default value on creation for the "subtopic" field.
	DefaultSubtopic string
	// DefaultPreset holds the default value on creation for the "preset" field.
	DefaultPreset string
	// DefaultResponseCount holds the default value on creation for the "response_count" field.
	DefaultResponseCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultQuestionConsistency holds the default value on creation for the "question_consistency" field.
	DefaultQuestionConsistency float64
	// DefaultMasteryPercentage holds the default value on creation for the "mastery_percentage" field.
	DefaultMasteryPercentage float64
	// DefaultOutcome holds the default value on creation for the "outcome" field.
	DefaultOutcome string
	// DefaultNextAction holds the default value on creation for the "next_action" field.
	DefaultNextAction string
)

// OrderOption defines the ordering options for the SubmissionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// BySubtopic orders the results by the subtopic field.
func BySubtopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopic, opts...).ToFunc()
}

// ByPreset orders the results by the preset field.
func ByPreset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreset, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByQuestionConsistency orders the results by the question_consistency field.
func ByQuestionConsistency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionConsistency, opts...).ToFunc()
}

// ByMasteryPercentage orders the results by the mastery_percentage field.
func ByMasteryPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryPercentage, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByNextAction orders the results by the next_action field.
func ByNextAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAction, opts...).ToFunc()
}
