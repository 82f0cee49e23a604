package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetOperation(data.Operation).
		SetSessionID(data.SessionID).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save API request event: %w", err)
	}
	return nil
}
