package judge

import (
	"context"
	"errors"
	"sync"

	"github.com/dverney/quizine/internal/quiz"
)

// MockCall records one Evaluate invocation for assertions.
type MockCall struct {
	Question   quiz.FreeTextQuestion
	UserAnswer string
	Language   string
}

// MockResponse is a canned reply for the MockJudge.
type MockResponse struct {
	Verdict *Verdict
	Err     error
}

// MockJudge is a deterministic Judge for testing. It returns canned verdicts
// in FIFO order and records all calls.
type MockJudge struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall

	// Reachable controls TestConnection. Defaults to true.
	Reachable bool
}

// NewMockJudge creates a MockJudge with the given canned responses.
func NewMockJudge(responses ...MockResponse) *MockJudge {
	return &MockJudge{responses: responses, Reachable: true}
}

func (m *MockJudge) Name() string { return "mock" }

// Evaluate returns the next canned response, or a bad-verdict error when the
// queue is empty.
func (m *MockJudge) Evaluate(_ context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Question: q, UserAnswer: userAnswer, Language: language})

	if len(m.responses) == 0 {
		return nil, &ErrBadVerdict{Provider: m.Name(), Err: errEmptyQueue}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Verdict, nil
}

func (m *MockJudge) TestConnection(context.Context) bool {
	return m.Reachable
}

// AddResponse appends a canned response to the queue.
func (m *MockJudge) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Evaluate calls made.
func (m *MockJudge) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

var errEmptyQueue = errors.New("mock response queue is empty")
