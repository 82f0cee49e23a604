// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/classpulse/classpulse/ent/apirequestevent"
	"github.com/classpulse/classpulse/ent/schema"
	"github.com/classpulse/classpulse/ent/sessionevent"
	"github.com/classpulse/classpulse/ent/snapshot"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescOperation is the schema descriptor for operation field.
	apirequesteventDescOperation := apirequesteventFields[0].Descriptor()
	// apirequestevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	apirequestevent.OperationValidator = apirequesteventDescOperation.Validators[0].(func(string) error)
	// apirequesteventDescSessionID is the schema descriptor for session_id field.
	apirequesteventDescSessionID := apirequesteventFields[1].Descriptor()
	// apirequestevent.DefaultSessionID holds the default value on creation for the session_id field.
	apirequestevent.DefaultSessionID = apirequesteventDescSessionID.Default.(string)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescErrorMessage is the schema descriptor for error_message field.
	apirequesteventDescErrorMessage := apirequesteventFields[4].Descriptor()
	// apirequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apirequestevent.DefaultErrorMessage = apirequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSubject is the schema descriptor for subject field.
	sessioneventDescSubject := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultSubject holds the default value on creation for the subject field.
	sessionevent.DefaultSubject = sessioneventDescSubject.Default.(string)
	// sessioneventDescChapter is the schema descriptor for chapter field.
	sessioneventDescChapter := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultChapter holds the default value on creation for the chapter field.
	sessionevent.DefaultChapter = sessioneventDescChapter.Default.(string)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTopic holds the default value on creation for the topic field.
	sessionevent.DefaultTopic = sessioneventDescTopic.Default.(string)
	// sessioneventDescClassName is the schema descriptor for class_name field.
	sessioneventDescClassName := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultClassName holds the default value on creation for the class_name field.
	sessionevent.DefaultClassName = sessioneventDescClassName.Default.(string)
	// sessioneventDescClassLevel is the schema descriptor for class_level field.
	sessioneventDescClassLevel := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultClassLevel holds the default value on creation for the class_level field.
	sessionevent.DefaultClassLevel = sessioneventDescClassLevel.Default.(int)
	// sessioneventDescMasteryPercentage is the schema descriptor for mastery_percentage field.
	sessioneventDescMasteryPercentage := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultMasteryPercentage holds the default value on creation for the mastery_percentage field.
	sessionevent.DefaultMasteryPercentage = sessioneventDescMasteryPercentage.Default.(float64)
	// sessioneventDescQuestionsAsked is the schema descriptor for questions_asked field.
	sessioneventDescQuestionsAsked := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	sessionevent.DefaultQuestionsAsked = sessioneventDescQuestionsAsked.Default.(int)
	// sessioneventDescInterventionCount is the schema descriptor for intervention_count field.
	sessioneventDescInterventionCount := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultInterventionCount holds the default value on creation for the intervention_count field.
	sessionevent.DefaultInterventionCount = sessioneventDescInterventionCount.Default.(int)
	// sessioneventDescStopReason is the schema descriptor for stop_reason field.
	sessioneventDescStopReason := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultStopReason holds the default value on creation for the stop_reason field.
	sessionevent.DefaultStopReason = sessioneventDescStopReason.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescQuestionID is the schema descriptor for question_id field.
	submissioneventDescQuestionID := submissioneventFields[1].Descriptor()
	// submissionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	submissionevent.QuestionIDValidator = submissioneventDescQuestionID.Validators[0].(func(string) error)
	// submissioneventDescSubtopic is the schema descriptor for subtopic field.
	submissioneventDescSubtopic := submissioneventFields[2].Descriptor()
	// submissionevent.DefaultSubtopic holds the default value on creation for the subtopic field.
	submissionevent.DefaultSubtopic = submissioneventDescSubtopic.Default.(string)
	// submissioneventDescPreset is the schema descriptor for preset field.
	submissioneventDescPreset := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultPreset holds the default value on creation for the preset field.
	submissionevent.DefaultPreset = submissioneventDescPreset.Default.(string)
	// submissioneventDescResponseCount is the schema descriptor for response_count field.
	submissioneventDescResponseCount := submissioneventFields[4].Descriptor()
	// submissionevent.DefaultResponseCount holds the default value on creation for the response_count field.
	submissionevent.DefaultResponseCount = submissioneventDescResponseCount.Default.(int)
	// submissioneventDescCorrectCount is the schema descriptor for correct_count field.
	submissioneventDescCorrectCount := submissioneventFields[5].Descriptor()
	// submissionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	submissionevent.DefaultCorrectCount = submissioneventDescCorrectCount.Default.(int)
	// submissioneventDescQuestionConsistency is the schema descriptor for question_consistency field.
	submissioneventDescQuestionConsistency := submissioneventFields[6].Descriptor()
	// submissionevent.DefaultQuestionConsistency holds the default value on creation for the question_consistency field.
	submissionevent.DefaultQuestionConsistency = submissioneventDescQuestionConsistency.Default.(float64)
	// submissioneventDescMasteryPercentage is the schema descriptor for mastery_percentage field.
	submissioneventDescMasteryPercentage := submissioneventFields[7].Descriptor()
	// submissionevent.DefaultMasteryPercentage holds the default value on creation for the mastery_percentage field.
	submissionevent.DefaultMasteryPercentage = submissioneventDescMasteryPercentage.Default.(float64)
	// submissioneventDescOutcome is the schema descriptor for outcome field.
	submissioneventDescOutcome := submissioneventFields[8].Descriptor()
	// submissionevent.DefaultOutcome holds the default value on creation for the outcome field.
	submissionevent.DefaultOutcome = submissioneventDescOutcome.Default.(string)
	// submissioneventDescNextAction is the schema descriptor for next_action field.
	submissioneventDescNextAction := submissioneventFields[9].Descriptor()
	// submissionevent.DefaultNextAction holds the default value on creation for the next_action field.
	submissionevent.DefaultNextAction = submissioneventDescNextAction.Default.(string)
}
