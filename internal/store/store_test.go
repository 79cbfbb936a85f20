package store

import (
	"context"
	"testing"

	"github.com/LinosCo/trainbot/internal/supervisor"
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

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Missing session.
	rec, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil for missing session")
	}

	created, err := repo.Create(ctx, "sess-1", "onboarding", supervisor.NewState())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != SessionInProgress {
		t.Errorf("status = %q, want in_progress", created.Status)
	}

	rec, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected session")
	}
	if rec.BotName != "onboarding" {
		t.Errorf("bot name = %q, want onboarding", rec.BotName)
	}
	if rec.State.Phase != supervisor.PhaseExplaining {
		t.Errorf("phase = %q, want %q", rec.State.Phase, supervisor.PhaseExplaining)
	}
}

func TestSessionSaveStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "sess-1", "onboarding", supervisor.NewState()); err != nil {
		t.Fatalf("create: %v", err)
	}

	state := supervisor.NewState()
	state.TopicIndex = 1
	state.Phase = supervisor.PhaseQuizzing
	state.RetryCount = 2
	state.Competence = supervisor.CompetenceAdvanced
	state.Results = append(state.Results, supervisor.TopicResult{
		TopicID: "t1",
		Status:  supervisor.StatusPassed,
		Score:   88,
		Gaps:    []string{"units"},
	})

	if err := repo.SaveState(ctx, "sess-1", state); err != nil {
		t.Fatalf("save state: %v", err)
	}

	rec, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State.TopicIndex != 1 {
		t.Errorf("topic index = %d, want 1", rec.State.TopicIndex)
	}
	if rec.State.Phase != supervisor.PhaseQuizzing {
		t.Errorf("phase = %q, want %q", rec.State.Phase, supervisor.PhaseQuizzing)
	}
	if len(rec.State.Results) != 1 || rec.State.Results[0].Score != 88 {
		t.Errorf("results not restored: %+v", rec.State.Results)
	}
}

func TestSessionSaveStateMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	err := repo.SaveState(context.Background(), "nope", supervisor.NewState())
	if err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestSessionComplete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "sess-1", "onboarding", supervisor.NewState()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Complete(ctx, "sess-1", 85, true); err != nil {
		t.Fatalf("complete: %v", err)
	}

	rec, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Status != SessionCompleted {
		t.Errorf("status = %q, want completed", rec.Status)
	}
	if rec.OverallScore != 85 || !rec.Passed {
		t.Errorf("outcome = %d/%v, want 85/true", rec.OverallScore, rec.Passed)
	}
	if rec.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}

	if _, err := repo.Create(ctx, "sess-2", "onboarding", supervisor.NewState()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Complete(ctx, "sess-2", 40, false); err != nil {
		t.Fatalf("complete: %v", err)
	}
	rec, err = repo.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Status != SessionFailed {
		t.Errorf("status = %q, want failed", rec.Status)
	}
}

func TestSessionListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := repo.Create(ctx, id, "bot", supervisor.NewState()); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	records, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(records))
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(limited))
	}
}

func TestSessionDeleteRemovesMessages(t *testing.T) {
	s := openTestStore(t)
	sessions := s.SessionRepo()
	messages := s.MessageRepo()
	ctx := context.Background()

	if _, err := sessions.Create(ctx, "sess-1", "bot", supervisor.NewState()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := messages.Append(ctx, MessageData{SessionID: "sess-1", Role: "learner", Content: "hi"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := sessions.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rec, err := sessions.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected session gone")
	}

	msgs, err := messages.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(msgs))
	}
}

func TestMessagesSequenced(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	turns := []MessageData{
		{SessionID: "sess-1", Role: "tutor", Content: "welcome", Phase: "explaining"},
		{SessionID: "sess-1", Role: "learner", Content: "ready", Phase: "explaining"},
		{SessionID: "sess-2", Role: "tutor", Content: "other session", Phase: "explaining"},
		{SessionID: "sess-1", Role: "tutor", Content: "question", Phase: "checking"},
	}
	for i, m := range turns {
		if err := repo.Append(ctx, m); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	msgs, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Sequence <= msgs[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", msgs[i-1].Sequence, msgs[i].Sequence)
		}
	}
	if msgs[2].Phase != "checking" {
		t.Errorf("phase = %q, want checking", msgs[2].Phase)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "explain", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "anthropic", Model: "m1", Purpose: "grading", InputTokens: 80, OutputTokens: 20, LatencyMs: 150, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "explain", InputTokens: 120, OutputTokens: 60, LatencyMs: 300, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "explain" || all[0].Success {
		t.Errorf("unexpected first event: %+v", all[0])
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "grading"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("expected 1 grading event, got %d", len(filtered))
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhi" {
		t.Errorf("request body not restored: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "explain", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "explain", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "m2", Purpose: "grading", InputTokens: 40, OutputTokens: 10, LatencyMs: 50, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	stats := map[string]LLMUsageStats{}
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	if st := stats["explain"]; st.Calls != 2 || st.InputTokens != 200 || st.OutputTokens != 100 || st.AvgLatencyMs != 200 {
		t.Errorf("explain stats = %+v", st)
	}
	if st := stats["grading"]; st.Calls != 1 || st.InputTokens != 40 {
		t.Errorf("grading stats = %+v", st)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	models := map[string]LLMModelUsage{}
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	if mu := models["m1"]; mu.Calls != 2 || mu.InputTokens != 200 {
		t.Errorf("m1 usage = %+v", mu)
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
