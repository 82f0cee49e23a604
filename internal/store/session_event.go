package store

import (
	"context"
	"fmt"

	"github.com/classpulse/classpulse/ent"
	"github.com/classpulse/classpulse/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetSubject(data.Subject).
		SetChapter(data.Chapter).
		SetTopic(data.Topic).
		SetClassName(data.ClassName).
		SetClassLevel(data.ClassLevel).
		SetMasteryPercentage(data.MasteryPercentage).
		SetQuestionsAsked(data.QuestionsAsked).
		SetInterventionCount(data.InterventionCount).
		SetStopReason(data.StopReason)

	if len(data.Subtopics) > 0 {
		builder = builder.SetSubtopics(data.Subtopics)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:         e.SessionID,
			Timestamp:         e.Timestamp,
			Action:            e.Action,
			Subject:           e.Subject,
			Chapter:           e.Chapter,
			Topic:             e.Topic,
			ClassName:         e.ClassName,
			ClassLevel:        e.ClassLevel,
			Subtopics:         e.Subtopics,
			MasteryPercentage: e.MasteryPercentage,
			QuestionsAsked:    e.QuestionsAsked,
			InterventionCount: e.InterventionCount,
			StopReason:        e.StopReason,
		})
	}
	return records, nil
}
