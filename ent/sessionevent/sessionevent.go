// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldClassName holds the string denoting the class_name field in the database.
	FieldClassName = "class_name"
	// FieldClassLevel holds the string denoting the class_level field in the database.
	FieldClassLevel = "class_level"
	// FieldSubtopics holds the string denoting the subtopics field in the database.
	FieldSubtopics = "subtopics"
	// FieldMasteryPercentage holds the string denoting the mastery_percentage field in the database.
	FieldMasteryPercentage = "mastery_percentage"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldInterventionCount holds the string denoting the intervention_count field in the database.
	FieldInterventionCount = "intervention_count"
	// FieldStopReason holds the string denoting the stop_reason field in the database.
	FieldStopReason = "stop_reason"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldSubject,
	FieldChapter,
	FieldTopic,
	FieldClassName,
	FieldClassLevel,
	FieldSubtopics,
	FieldMasteryPercentage,
	FieldQuestionsAsked,
	FieldInterventionCount,
	FieldStopReason,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultChapter holds the default value on creation for the "chapter" field.
	DefaultChapter string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultClassName holds the default value on creation for the "class_name" field.
	DefaultClassName string
	// DefaultClassLevel holds the default value on creation for the "class_level" field.
	DefaultClassLevel int
	// DefaultMasteryPercentage holds the default value on creation for the "mastery_percentage" field.
	DefaultMasteryPercentage float64
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultInterventionCount holds the default value on creation for the "intervention_count" field.
	DefaultInterventionCount int
	// DefaultStopReason holds the default value on creation for the "stop_reason" field.
	DefaultStopReason string
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByClassName orders the results by the class_name field.
func ByClassName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassName, opts...).ToFunc()
}

// ByClassLevel orders the results by the class_level field.
func ByClassLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassLevel, opts...).ToFunc()
}

// ByMasteryPercentage orders the results by the mastery_percentage field.
func ByMasteryPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryPercentage, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByInterventionCount orders the results by the intervention_count field.
func ByInterventionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterventionCount, opts...).ToFunc()
}

// ByStopReason orders the results by the stop_reason field.
func ByStopReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopReason, opts...).ToFunc()
}
