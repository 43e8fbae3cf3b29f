package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/dverney/quizine/internal/store"
)

// fakeEventRepo collects appended events in memory.
type fakeEventRepo struct {
	events []store.JudgeEventData
	fail   bool
}

func (f *fakeEventRepo) Append(_ context.Context, data store.JudgeEventData) error {
	if f.fail {
		return errors.New("append failed")
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) Recent(context.Context, int) ([]store.JudgeEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) Get(context.Context, int) (*store.JudgeEvent, error) {
	return nil, nil
}

func TestLoggingJudge_RecordsSuccess(t *testing.T) {
	mock := NewMockJudge(MockResponse{
		Verdict: &Verdict{Score: 80, Explanation: "ok", ExpectedAnswer: "Paris"},
	})
	repo := &fakeEventRepo{}
	j := WithLogging(mock, repo)

	verdict, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Score != 80 {
		t.Errorf("expected score 80, got %d", verdict.Score)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "mock" {
		t.Errorf("expected provider mock, got %q", e.Provider)
	}
	if !e.Success {
		t.Error("expected success event")
	}
	if e.Score != 80 {
		t.Errorf("expected score 80, got %d", e.Score)
	}
	if e.Language != "English" {
		t.Errorf("expected language English, got %q", e.Language)
	}
}

func TestLoggingJudge_RecordsFailure(t *testing.T) {
	mock := NewMockJudge(MockResponse{
		Err: &ErrTransport{Provider: "mock", Status: 503},
	})
	repo := &fakeEventRepo{}
	j := WithLogging(mock, repo)

	_, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
}

func TestLoggingJudge_AppendFailureDoesNotFailEvaluation(t *testing.T) {
	mock := NewMockJudge(MockResponse{
		Verdict: &Verdict{Score: 100, Explanation: "ok", ExpectedAnswer: "x"},
	})
	repo := &fakeEventRepo{fail: true}
	j := WithLogging(mock, repo)

	verdict, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "x", "English")
	if err != nil {
		t.Fatalf("evaluation should survive a logging failure: %v", err)
	}
	if verdict.Score != 100 {
		t.Errorf("expected score 100, got %d", verdict.Score)
	}
}

func TestMockJudge_FIFO(t *testing.T) {
	mock := NewMockJudge(
		MockResponse{Verdict: &Verdict{Score: 10}},
		MockResponse{Verdict: &Verdict{Score: 20}},
	)

	v1, _ := mock.Evaluate(context.Background(), testFreeTextQuestion(), "a", "English")
	v2, _ := mock.Evaluate(context.Background(), testFreeTextQuestion(), "b", "English")

	if v1.Score != 10 || v2.Score != 20 {
		t.Errorf("expected scores 10 then 20, got %d then %d", v1.Score, v2.Score)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
	if mock.Calls[1].UserAnswer != "b" {
		t.Errorf("expected second call answer 'b', got %q", mock.Calls[1].UserAnswer)
	}
}

func TestMockJudge_EmptyQueue(t *testing.T) {
	mock := NewMockJudge()

	_, err := mock.Evaluate(context.Background(), testFreeTextQuestion(), "a", "English")
	if err == nil {
		t.Fatal("expected error on empty queue")
	}
	var bad *ErrBadVerdict
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadVerdict, got %T", err)
	}
}
