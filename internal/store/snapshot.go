package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/classpulse/classpulse/ent"
	"github.com/classpulse/classpulse/ent/snapshot"
)

// snapshotRepo stores teacher preferences as JSON rows, newest wins.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	prefs, err := prefsToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(prefs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return snapshotFromRow(row)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The Nth most recent row marks the cutoff; everything at or before its
	// timestamp goes.
	rows, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	threshold := rows[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// prefsToMap flattens SnapshotData into the map shape the ent JSON column
// stores.
func prefsToMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// snapshotFromRow rebuilds the typed preferences from a stored row.
func snapshotFromRow(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal stored preferences: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
