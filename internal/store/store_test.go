package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			LastSetup: &SetupDefaults{
				Subject:   "Mathematics",
				Topic:     "Linear Equations",
				ClassName: "10-A",
				Subtopics: []string{"Simple Linear Equations", "Word Problems"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.LastSetup == nil || snap.Data.LastSetup.Subject != "Mathematics" {
		t.Errorf("last setup = %+v", snap.Data.LastSetup)
	}
	if len(snap.Data.LastSetup.Subtopics) != 2 {
		t.Errorf("subtopics = %v", snap.Data.LastSetup.Subtopics)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionEventAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "sess-1",
		Action:     "start",
		Subject:    "Mathematics",
		Chapter:    "Algebra",
		Topic:      "Linear Equations",
		ClassName:  "10-A",
		ClassLevel: 10,
		Subtopics:  []string{"Simple Linear Equations"},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "sess-1",
		Action:            "complete",
		Subject:           "Mathematics",
		MasteryPercentage: 72.5,
		QuestionsAsked:    9,
		InterventionCount: 1,
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	records, err := repo.SessionHistory(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("history = %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Action != "complete" {
		t.Errorf("records[0].Action = %q, want complete", records[0].Action)
	}
	if records[0].MasteryPercentage != 72.5 {
		t.Errorf("mastery = %v", records[0].MasteryPercentage)
	}
	if records[1].Action != "start" {
		t.Errorf("records[1].Action = %q, want start", records[1].Action)
	}
	if len(records[1].Subtopics) != 1 {
		t.Errorf("subtopics = %v", records[1].Subtopics)
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "sess-1",
			Action:    "start",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.SessionHistory(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("history = %d records, want 3", len(records))
	}
}

func TestSubmissionAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, q := range []string{"q1", "q2"} {
		err := repo.AppendSubmission(ctx, SubmissionEventData{
			SessionID:           "sess-1",
			QuestionID:          q,
			Subtopic:            "Simple Linear Equations",
			Preset:              "pass",
			ResponseCount:       10,
			CorrectCount:        8 - i,
			QuestionConsistency: 80,
			MasteryPercentage:   float64(40 + 10*i),
			Outcome:             "strong",
			NextAction:          "next_subtopic",
		})
		if err != nil {
			t.Fatalf("append %s: %v", q, err)
		}
	}
	// A submission in another session must not show up.
	err := repo.AppendSubmission(ctx, SubmissionEventData{
		SessionID:  "sess-2",
		QuestionID: "q9",
	})
	if err != nil {
		t.Fatalf("append other session: %v", err)
	}

	records, err := repo.SubmissionsForSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("submissions = %d, want 2", len(records))
	}
	// Oldest first.
	if records[0].QuestionID != "q1" || records[1].QuestionID != "q2" {
		t.Errorf("order = %s, %s", records[0].QuestionID, records[1].QuestionID)
	}
	if records[0].CorrectCount != 8 {
		t.Errorf("correct count = %d", records[0].CorrectCount)
	}
}

func TestAPIRequestAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAPIRequest(ctx, APIRequestEventData{
		Operation: "next_question",
		SessionID: "sess-1",
		LatencyMs: 120,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().APIRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_events", "submission_events", "api_request_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
