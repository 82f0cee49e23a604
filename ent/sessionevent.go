// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-assigned session identifier
	SessionID string `json:"session_id,omitempty"`
	// start, stop or complete
	Action string `json:"action,omitempty"`
	// Subject taught in the session
	Subject string `json:"subject,omitempty"`
	// Chapter holds the value of the "chapter" field.
	Chapter string `json:"chapter,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Class label, e.g. 10-A
	ClassName string `json:"class_name,omitempty"`
	// ClassLevel holds the value of the "class_level" field.
	ClassLevel int `json:"class_level,omitempty"`
	// Planned subtopic list (on start only)
	Subtopics []string `json:"subtopics,omitempty"`
	// Final class mastery 0-100 (on stop/complete only)
	MasteryPercentage float64 `json:"mastery_percentage,omitempty"`
	// Total questions served (on stop/complete only)
	QuestionsAsked int `json:"questions_asked,omitempty"`
	// Teacher interventions triggered (on stop/complete only)
	InterventionCount int `json:"intervention_count,omitempty"`
	// Server-reported reason (on stop only)
	StopReason   string `json:"stop_reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldSubtopics:
			values[i] = new([]byte)
		case sessionevent.FieldMasteryPercentage:
			values[i] = new(sql.NullFloat64)
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldClassLevel, sessionevent.FieldQuestionsAsked, sessionevent.FieldInterventionCount:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldAction, sessionevent.FieldSubject, sessionevent.FieldChapter, sessionevent.FieldTopic, sessionevent.FieldClassName, sessionevent.FieldStopReason:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case sessionevent.FieldChapter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter", values[i])
			} else if value.Valid {
				_m.Chapter = value.String
			}
		case sessionevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sessionevent.FieldClassName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_name", values[i])
			} else if value.Valid {
				_m.ClassName = value.String
			}
		case sessionevent.FieldClassLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field class_level", values[i])
			} else if value.Valid {
				_m.ClassLevel = int(value.Int64)
			}
		case sessionevent.FieldSubtopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subtopics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subtopics); err != nil {
					return fmt.Errorf("unmarshal field subtopics: %w", err)
				}
			}
		case sessionevent.FieldMasteryPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_percentage", values[i])
			} else if value.Valid {
				_m.MasteryPercentage = value.Float64
			}
		case sessionevent.FieldQuestionsAsked:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_asked", values[i])
			} else if value.Valid {
				_m.QuestionsAsked = int(value.Int64)
			}
		case sessionevent.FieldInterventionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intervention_count", values[i])
			} else if value.Valid {
				_m.InterventionCount = int(value.Int64)
			}
		case sessionevent.FieldStopReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_reason", values[i])
			} else if value.Valid {
				_m.StopReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
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
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("chapter=")
	builder.WriteString(_m.Chapter)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("class_name=")
	builder.WriteString(_m.ClassName)
	builder.WriteString(", ")
	builder.WriteString("class_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClassLevel))
	builder.WriteString(", ")
	builder.WriteString("subtopics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtopics))
	builder.WriteString(", ")
	builder.WriteString("mastery_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryPercentage))
	builder.WriteString(", ")
	builder.WriteString("questions_asked=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAsked))
	builder.WriteString(", ")
	builder.WriteString("intervention_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InterventionCount))
	builder.WriteString(", ")
	builder.WriteString("stop_reason=")
	builder.WriteString(_m.StopReason)
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
