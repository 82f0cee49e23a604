// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSubtopic, v))
}

// Preset applies equality check predicate on the "preset" field. It's identical to PresetEQ.
func Preset(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldPreset, v))
}

// ResponseCount applies equality check predicate on the "response_count" field. It's identical to ResponseCountEQ.
func ResponseCount(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldResponseCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// QuestionConsistency applies equality check predicate on the "question_consistency" field. It's identical to QuestionConsistencyEQ.
func QuestionConsistency(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionConsistency, v))
}

// MasteryPercentage applies equality check predicate on the "mastery_percentage" field. It's identical to MasteryPercentageEQ.
func MasteryPercentage(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldMasteryPercentage, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldOutcome, v))
}

// NextAction applies equality check predicate on the "next_action" field. It's identical to NextActionEQ.
func NextAction(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldNextAction, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldSubtopic, v))
}

// PresetEQ applies the EQ predicate on the "preset" field.
func PresetEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldPreset, v))
}

// PresetNEQ applies the NEQ predicate on the "preset" field.
func PresetNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldPreset, v))
}

// PresetIn applies the In predicate on the "preset" field.
func PresetIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldPreset, vs...))
}

// PresetNotIn applies the NotIn predicate on the "preset" field.
func PresetNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldPreset, vs...))
}

// PresetGT applies the GT predicate on the "preset" field.
func PresetGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldPreset, v))
}

// PresetGTE applies the GTE predicate on the "preset" field.
func PresetGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldPreset, v))
}

// PresetLT applies the LT predicate on the "preset" field.
func PresetLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldPreset, v))
}

// PresetLTE applies the LTE predicate on the "preset" field.
func PresetLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldPreset, v))
}

// PresetContains applies the Contains predicate on the "preset" field.
func PresetContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldPreset, v))
}

// PresetHasPrefix applies the HasPrefix predicate on the "preset" field.
func PresetHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldPreset, v))
}

// PresetHasSuffix applies the HasSuffix predicate on the "preset" field.
func PresetHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldPreset, v))
}

// PresetEqualFold applies the EqualFold predicate on the "preset" field.
func PresetEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldPreset, v))
}

// PresetContainsFold applies the ContainsFold predicate on the "preset" field.
func PresetContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldPreset, v))
}

// ResponseCountEQ applies the EQ predicate on the "response_count" field.
func ResponseCountEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldResponseCount, v))
}

// ResponseCountNEQ applies the NEQ predicate on the "response_count" field.
func ResponseCountNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldResponseCount, v))
}

// ResponseCountIn applies the In predicate on the "response_count" field.
func ResponseCountIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldResponseCount, vs...))
}

// ResponseCountNotIn applies the NotIn predicate on the "response_count" field.
func ResponseCountNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldResponseCount, vs...))
}

// ResponseCountGT applies the GT predicate on the "response_count" field.
func ResponseCountGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldResponseCount, v))
}

// ResponseCountGTE applies the GTE predicate on the "response_count" field.
func ResponseCountGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldResponseCount, v))
}

// ResponseCountLT applies the LT predicate on the "response_count" field.
func ResponseCountLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldResponseCount, v))
}

// ResponseCountLTE applies the LTE predicate on the "response_count" field.
func ResponseCountLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldResponseCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// QuestionConsistencyEQ applies the EQ predicate on the "question_consistency" field.
func QuestionConsistencyEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionConsistency, v))
}

// QuestionConsistencyNEQ applies the NEQ predicate on the "question_consistency" field.
func QuestionConsistencyNEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldQuestionConsistency, v))
}

// QuestionConsistencyIn applies the In predicate on the "question_consistency" field.
func QuestionConsistencyIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldQuestionConsistency, vs...))
}

// QuestionConsistencyNotIn applies the NotIn predicate on the "question_consistency" field.
func QuestionConsistencyNotIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldQuestionConsistency, vs...))
}

// QuestionConsistencyGT applies the GT predicate on the "question_consistency" field.
func QuestionConsistencyGT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldQuestionConsistency, v))
}

// QuestionConsistencyGTE applies the GTE predicate on the "question_consistency" field.
func QuestionConsistencyGTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldQuestionConsistency, v))
}

// QuestionConsistencyLT applies the LT predicate on the "question_consistency" field.
func QuestionConsistencyLT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldQuestionConsistency, v))
}

// QuestionConsistencyLTE applies the LTE predicate on the "question_consistency" field.
func QuestionConsistencyLTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldQuestionConsistency, v))
}

// MasteryPercentageEQ applies the EQ predicate on the "mastery_percentage" field.
func MasteryPercentageEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageNEQ applies the NEQ predicate on the "mastery_percentage" field.
func MasteryPercentageNEQ(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageIn applies the In predicate on the "mastery_percentage" field.
func MasteryPercentageIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageNotIn applies the NotIn predicate on the "mastery_percentage" field.
func MasteryPercentageNotIn(vs ...float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageGT applies the GT predicate on the "mastery_percentage" field.
func MasteryPercentageGT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldMasteryPercentage, v))
}

// MasteryPercentageGTE applies the GTE predicate on the "mastery_percentage" field.
func MasteryPercentageGTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldMasteryPercentage, v))
}

// MasteryPercentageLT applies the LT predicate on the "mastery_percentage" field.
func MasteryPercentageLT(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldMasteryPercentage, v))
}

// MasteryPercentageLTE applies the LTE predicate on the "mastery_percentage" field.
func MasteryPercentageLTE(v float64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldMasteryPercentage, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// NextActionEQ applies the EQ predicate on the "next_action" field.
func NextActionEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldNextAction, v))
}

// NextActionNEQ applies the NEQ predicate on the "next_action" field.
func NextActionNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldNextAction, v))
}

// NextActionIn applies the In predicate on the "next_action" field.
func NextActionIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldNextAction, vs...))
}

// NextActionNotIn applies the NotIn predicate on the "next_action" field.
func NextActionNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldNextAction, vs...))
}

// NextActionGT applies the GT predicate on the "next_action" field.
func NextActionGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldNextAction, v))
}

// NextActionGTE applies the GTE predicate on the "next_action" field.
func NextActionGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldNextAction, v))
}

// NextActionLT applies the LT predicate on the "next_action" field.
func NextActionLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldNextAction, v))
}

// NextActionLTE applies the LTE predicate on the "next_action" field.
func NextActionLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldNextAction, v))
}

// NextActionContains applies the Contains predicate on the "next_action" field.
func NextActionContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldNextAction, v))
}

// NextActionHasPrefix applies the HasPrefix predicate on the "next_action" field.
func NextActionHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldNextAction, v))
}

// NextActionHasSuffix applies the HasSuffix predicate on the "next_action" field.
func NextActionHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldNextAction, v))
}

// NextActionEqualFold applies the EqualFold predicate on the "next_action" field.
func NextActionEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldNextAction, v))
}

// NextActionContainsFold applies the ContainsFold predicate on the "next_action" field.
func NextActionContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldNextAction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.NotPredicates(p))
}
