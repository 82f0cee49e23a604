// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSubject, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldChapter, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTopic, v))
}

// ClassName applies equality check predicate on the "class_name" field. It's identical to ClassNameEQ.
func ClassName(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldClassName, v))
}

// ClassLevel applies equality check predicate on the "class_level" field. It's identical to ClassLevelEQ.
func ClassLevel(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldClassLevel, v))
}

// MasteryPercentage applies equality check predicate on the "mastery_percentage" field. It's identical to MasteryPercentageEQ.
func MasteryPercentage(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMasteryPercentage, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// InterventionCount applies equality check predicate on the "intervention_count" field. It's identical to InterventionCountEQ.
func InterventionCount(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldInterventionCount, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldStopReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSubject, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldChapter, v))
}

// ChapterContains applies the Contains predicate on the "chapter" field.
func ChapterContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldChapter, v))
}

// ChapterHasPrefix applies the HasPrefix predicate on the "chapter" field.
func ChapterHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldChapter, v))
}

// ChapterHasSuffix applies the HasSuffix predicate on the "chapter" field.
func ChapterHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldChapter, v))
}

// ChapterEqualFold applies the EqualFold predicate on the "chapter" field.
func ChapterEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldChapter, v))
}

// ChapterContainsFold applies the ContainsFold predicate on the "chapter" field.
func ChapterContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldChapter, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// ClassNameEQ applies the EQ predicate on the "class_name" field.
func ClassNameEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldClassName, v))
}

// ClassNameNEQ applies the NEQ predicate on the "class_name" field.
func ClassNameNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldClassName, v))
}

// ClassNameIn applies the In predicate on the "class_name" field.
func ClassNameIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldClassName, vs...))
}

// ClassNameNotIn applies the NotIn predicate on the "class_name" field.
func ClassNameNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldClassName, vs...))
}

// ClassNameGT applies the GT predicate on the "class_name" field.
func ClassNameGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldClassName, v))
}

// ClassNameGTE applies the GTE predicate on the "class_name" field.
func ClassNameGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldClassName, v))
}

// ClassNameLT applies the LT predicate on the "class_name" field.
func ClassNameLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldClassName, v))
}

// ClassNameLTE applies the LTE predicate on the "class_name" field.
func ClassNameLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldClassName, v))
}

// ClassNameContains applies the Contains predicate on the "class_name" field.
func ClassNameContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldClassName, v))
}

// ClassNameHasPrefix applies the HasPrefix predicate on the "class_name" field.
func ClassNameHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldClassName, v))
}

// ClassNameHasSuffix applies the HasSuffix predicate on the "class_name" field.
func ClassNameHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldClassName, v))
}

// ClassNameEqualFold applies the EqualFold predicate on the "class_name" field.
func ClassNameEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldClassName, v))
}

// ClassNameContainsFold applies the ContainsFold predicate on the "class_name" field.
func ClassNameContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldClassName, v))
}

// ClassLevelEQ applies the EQ predicate on the "class_level" field.
func ClassLevelEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldClassLevel, v))
}

// ClassLevelNEQ applies the NEQ predicate on the "class_level" field.
func ClassLevelNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldClassLevel, v))
}

// ClassLevelIn applies the In predicate on the "class_level" field.
func ClassLevelIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldClassLevel, vs...))
}

// ClassLevelNotIn applies the NotIn predicate on the "class_level" field.
func ClassLevelNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldClassLevel, vs...))
}

// ClassLevelGT applies the GT predicate on the "class_level" field.
func ClassLevelGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldClassLevel, v))
}

// ClassLevelGTE applies the GTE predicate on the "class_level" field.
func ClassLevelGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldClassLevel, v))
}

// ClassLevelLT applies the LT predicate on the "class_level" field.
func ClassLevelLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldClassLevel, v))
}

// ClassLevelLTE applies the LTE predicate on the "class_level" field.
func ClassLevelLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldClassLevel, v))
}

// SubtopicsIsNil applies the IsNil predicate on the "subtopics" field.
func SubtopicsIsNil() predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIsNull(FieldSubtopics))
}

// SubtopicsNotNil applies the NotNil predicate on the "subtopics" field.
func SubtopicsNotNil() predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotNull(FieldSubtopics))
}

// MasteryPercentageEQ applies the EQ predicate on the "mastery_percentage" field.
func MasteryPercentageEQ(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageNEQ applies the NEQ predicate on the "mastery_percentage" field.
func MasteryPercentageNEQ(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageIn applies the In predicate on the "mastery_percentage" field.
func MasteryPercentageIn(vs ...float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageNotIn applies the NotIn predicate on the "mastery_percentage" field.
func MasteryPercentageNotIn(vs ...float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageGT applies the GT predicate on the "mastery_percentage" field.
func MasteryPercentageGT(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldMasteryPercentage, v))
}

// MasteryPercentageGTE applies the GTE predicate on the "mastery_percentage" field.
func MasteryPercentageGTE(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldMasteryPercentage, v))
}

// MasteryPercentageLT applies the LT predicate on the "mastery_percentage" field.
func MasteryPercentageLT(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldMasteryPercentage, v))
}

// MasteryPercentageLTE applies the LTE predicate on the "mastery_percentage" field.
func MasteryPercentageLTE(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldMasteryPercentage, v))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldQuestionsAsked, v))
}

// InterventionCountEQ applies the EQ predicate on the "intervention_count" field.
func InterventionCountEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldInterventionCount, v))
}

// InterventionCountNEQ applies the NEQ predicate on the "intervention_count" field.
func InterventionCountNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldInterventionCount, v))
}

// InterventionCountIn applies the In predicate on the "intervention_count" field.
func InterventionCountIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldInterventionCount, vs...))
}

// InterventionCountNotIn applies the NotIn predicate on the "intervention_count" field.
func InterventionCountNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldInterventionCount, vs...))
}

// InterventionCountGT applies the GT predicate on the "intervention_count" field.
func InterventionCountGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldInterventionCount, v))
}

// InterventionCountGTE applies the GTE predicate on the "intervention_count" field.
func InterventionCountGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldInterventionCount, v))
}

// InterventionCountLT applies the LT predicate on the "intervention_count" field.
func InterventionCountLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldInterventionCount, v))
}

// InterventionCountLTE applies the LTE predicate on the "intervention_count" field.
func InterventionCountLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldInterventionCount, v))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldStopReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
