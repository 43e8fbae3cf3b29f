package judge

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/store"
)

// LoggingJudge is a decorator that records every judge call as an event.
// Only call telemetry is stored, never quiz attempt history.
type LoggingJudge struct {
	inner     Judge
	eventRepo store.JudgeEventRepo
}

// WithLogging wraps a Judge with event logging.
func WithLogging(j Judge, repo store.JudgeEventRepo) Judge {
	return &LoggingJudge{inner: j, eventRepo: repo}
}

func (l *LoggingJudge) Name() string { return l.inner.Name() }

func (l *LoggingJudge) Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	start := time.Now()

	verdict, err := l.inner.Evaluate(ctx, q, userAnswer, language)

	data := store.JudgeEventData{
		Provider:  l.inner.Name(),
		Question:  q.Prompt(),
		Language:  language,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if verdict != nil {
		data.Score = verdict.Score
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the evaluation if logging fails.
	if logErr := l.eventRepo.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log judge event: %v\n", logErr)
	}

	return verdict, err
}

func (l *LoggingJudge) TestConnection(ctx context.Context) bool {
	return l.inner.TestConnection(ctx)
}
