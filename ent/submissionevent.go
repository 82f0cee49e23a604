// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

// SubmissionEvent is the model entity for the SubmissionEvent schema.
type SubmissionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Subtopic holds the value of the "subtopic" field.
	Subtopic string `json:"subtopic,omitempty"`
	// Simulator preset used: pass, fail, random, custom
	Preset string `json:"preset,omitempty"`
	// Number of simulated students
	ResponseCount int `json:"response_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// Evaluation score 0-100
	QuestionConsistency float64 `json:"question_consistency,omitempty"`
	// Running class mastery 0-100
	MasteryPercentage float64 `json:"mastery_percentage,omitempty"`
	// Server verdict: strong, weak, borderline
	Outcome string `json:"outcome,omitempty"`
	// Server instruction after this submission
	NextAction   string `json:"next_action,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmissionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldQuestionConsistency, submissionevent.FieldMasteryPercentage:
			values[i] = new(sql.NullFloat64)
		case submissionevent.FieldID, submissionevent.FieldSequence, submissionevent.FieldResponseCount, submissionevent.FieldCorrectCount:
			values[i] = new(sql.NullInt64)
		case submissionevent.FieldSessionID, submissionevent.FieldQuestionID, submissionevent.FieldSubtopic, submissionevent.FieldPreset, submissionevent.FieldOutcome, submissionevent.FieldNextAction:
			values[i] = new(sql.NullString)
		case submissionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmissionEvent fields.
func (_m *SubmissionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submissionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case submissionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case submissionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case submissionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case submissionevent.FieldSubtopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic", values[i])
			} else if value.Valid {
				_m.Subtopic = value.String
			}
		case submissionevent.FieldPreset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preset", values[i])
			} else if value.Valid {
				_m.Preset = value.String
			}
		case submissionevent.FieldResponseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_count", values[i])
			} else if value.Valid {
				_m.ResponseCount = int(value.Int64)
			}
		case submissionevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case submissionevent.FieldQuestionConsistency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_consistency", values[i])
			} else if value.Valid {
				_m.QuestionConsistency = value.Float64
			}
		case submissionevent.FieldMasteryPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_percentage", values[i])
			} else if value.Valid {
				_m.MasteryPercentage = value.Float64
			}
		case submissionevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case submissionevent.FieldNextAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_action", values[i])
			} else if value.Valid {
				_m.NextAction = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmissionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SubmissionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubmissionEvent.
// Note that you need to call SubmissionEvent.Unwrap() before calling this method if this SubmissionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmissionEvent) Update() *SubmissionEventUpdateOne {
	return NewSubmissionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmissionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmissionEvent) Unwrap() *SubmissionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmissionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmissionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SubmissionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("subtopic=")
	builder.WriteString(_m.Subtopic)
	builder.WriteString(", ")
	builder.WriteString("preset=")
	builder.WriteString(_m.Preset)
	builder.WriteString(", ")
	builder.WriteString("response_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("question_consistency=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionConsistency))
	builder.WriteString(", ")
	builder.WriteString("mastery_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryPercentage))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("next_action=")
	builder.WriteString(_m.NextAction)
	builder.WriteByte(')')
	return builder.String()
}

// SubmissionEvents is a parsable slice of SubmissionEvent.
type SubmissionEvents []*SubmissionEvent
