package store

import (
	"context"
	"fmt"

	"github.com/classpulse/classpulse/ent"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetSubtopic(data.Subtopic).
		SetPreset(data.Preset).
		SetResponseCount(data.ResponseCount).
		SetCorrectCount(data.CorrectCount).
		SetQuestionConsistency(data.QuestionConsistency).
		SetMasteryPercentage(data.MasteryPercentage).
		SetOutcome(data.Outcome).
		SetNextAction(data.NextAction).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) SubmissionsForSession(ctx context.Context, sessionID string) ([]SubmissionRecord, error) {
	events, err := r.client.SubmissionEvent.Query().
		Where(submissionevent.SessionID(sessionID)).
		Order(ent.Asc(submissionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	records := make([]SubmissionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SubmissionRecord{
			Timestamp:           e.Timestamp,
			QuestionID:          e.QuestionID,
			Subtopic:            e.Subtopic,
			Preset:              e.Preset,
			ResponseCount:       e.ResponseCount,
			CorrectCount:        e.CorrectCount,
			QuestionConsistency: e.QuestionConsistency,
			MasteryPercentage:   e.MasteryPercentage,
			Outcome:             e.Outcome,
			NextAction:          e.NextAction,
		})
	}
	return records, nil
}
