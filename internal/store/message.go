package store

import (
	"context"
	"fmt"

	"github.com/LinosCo/trainbot/ent"
	"github.com/LinosCo/trainbot/ent/message"
)

// messageRepo implements MessageRepo backed by ent and the global
// sequence counter.
type messageRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *messageRepo) Append(ctx context.Context, data MessageData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Message.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRole(data.Role).
		SetContent(data.Content).
		SetPhase(data.Phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (r *messageRepo) BySession(ctx context.Context, sessionID string) ([]MessageRecord, error) {
	msgs, err := r.client.Message.Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Asc(message.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	records := make([]MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, MessageRecord{
			ID:        m.ID,
			Sequence:  m.Sequence,
			Timestamp: m.Timestamp,
			SessionID: m.SessionID,
			Role:      m.Role,
			Content:   m.Content,
			Phase:     m.Phase,
		})
	}
	return records, nil
}
