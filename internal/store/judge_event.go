package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dverney/quizine/ent"
	"github.com/dverney/quizine/ent/judgeevent"
)

// JudgeEventData captures the data for a single judge call event.
type JudgeEventData struct {
	Provider     string
	Question     string
	Language     string
	Score        int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// JudgeEvent is a stored judge call event.
type JudgeEvent struct {
	ID           int
	UID          string
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Question     string
	Language     string
	Score        int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// JudgeEventRepo provides append and query access to judge call events.
type JudgeEventRepo interface {
	// Append stores a new judge event.
	Append(ctx context.Context, data JudgeEventData) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]JudgeEvent, error)

	// Get returns the event with the given ID, or nil if absent.
	Get(ctx context.Context, id int) (*JudgeEvent, error)
}

// judgeEventRepo implements JudgeEventRepo backed by ent and the global
// sequence counter.
type judgeEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *judgeEventRepo) Append(ctx context.Context, data JudgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.JudgeEvent.Create().
		SetUID(uuid.NewString()).
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetQuestion(data.Question).
		SetLanguage(data.Language).
		SetScore(data.Score).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save judge event: %w", err)
	}

	return nil
}

func (r *judgeEventRepo) Recent(ctx context.Context, limit int) ([]JudgeEvent, error) {
	q := r.client.JudgeEvent.Query().
		Order(ent.Desc(judgeevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query judge events: %w", err)
	}

	events := make([]JudgeEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, fromEntJudgeEvent(row))
	}
	return events, nil
}

func (r *judgeEventRepo) Get(ctx context.Context, id int) (*JudgeEvent, error) {
	row, err := r.client.JudgeEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get judge event %d: %w", id, err)
	}

	e := fromEntJudgeEvent(row)
	return &e, nil
}

func fromEntJudgeEvent(row *ent.JudgeEvent) JudgeEvent {
	return JudgeEvent{
		ID:           row.ID,
		UID:          row.UID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Question:     row.Question,
		Language:     row.Language,
		Score:        row.Score,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
	}
}
