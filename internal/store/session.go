package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LinosCo/trainbot/ent"
	"github.com/LinosCo/trainbot/ent/message"
	"github.com/LinosCo/trainbot/ent/trainingsession"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, sessionID, botName string, state supervisor.State) (*TrainingSessionRecord, error) {
	stateMap, err := stateToMap(state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}

	ts, err := r.client.TrainingSession.Create().
		SetSessionID(sessionID).
		SetBotName(botName).
		SetState(stateMap).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return entSessionToRecord(ts)
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*TrainingSessionRecord, error) {
	ts, err := r.client.TrainingSession.Query().
		Where(trainingsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entSessionToRecord(ts)
}

func (r *sessionRepo) SaveState(ctx context.Context, sessionID string, state supervisor.State) error {
	stateMap, err := stateToMap(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	n, err := r.client.TrainingSession.Update().
		Where(trainingsession.SessionID(sessionID)).
		SetState(stateMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, sessionID string, overallScore int, passed bool) error {
	status := SessionFailed
	if passed {
		status = SessionCompleted
	}
	n, err := r.client.TrainingSession.Update().
		Where(trainingsession.SessionID(sessionID)).
		SetStatus(status).
		SetOverallScore(overallScore).
		SetPassed(passed).
		SetCompletedAt(nowUTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]TrainingSessionRecord, error) {
	q := r.client.TrainingSession.Query().
		Order(ent.Desc(trainingsession.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	sessions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	records := make([]TrainingSessionRecord, 0, len(sessions))
	for _, ts := range sessions {
		rec, err := entSessionToRecord(ts)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.client.Message.Delete().
		Where(message.SessionID(sessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}

	n, err := r.client.TrainingSession.Delete().
		Where(trainingsession.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// stateToMap converts supervisor state to map[string]any for ent JSON storage.
func stateToMap(state supervisor.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSessionToRecord converts an ent TrainingSession to a store record.
func entSessionToRecord(ts *ent.TrainingSession) (*TrainingSessionRecord, error) {
	b, err := json.Marshal(ts.State)
	if err != nil {
		return nil, fmt.Errorf("marshal ent state: %w", err)
	}
	var state supervisor.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &TrainingSessionRecord{
		ID:           ts.ID,
		SessionID:    ts.SessionID,
		BotName:      ts.BotName,
		Status:       ts.Status,
		State:        state,
		OverallScore: ts.OverallScore,
		Passed:       ts.Passed,
		StartedAt:    ts.StartedAt,
		CompletedAt:  ts.CompletedAt,
	}, nil
}
