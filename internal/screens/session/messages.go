package session

import (
	"github.com/dverney/quizine/internal/quiz"
)

// answerEvaluatedMsg is sent when evaluation of the submitted answer is done.
// Carries the question index so stale replies can be discarded.
type answerEvaluatedMsg struct {
	Index  int
	Result quiz.QuestionResult
	Err    error
}

// quizFinishedMsg is sent after the last question's result is dismissed.
type quizFinishedMsg struct{}
