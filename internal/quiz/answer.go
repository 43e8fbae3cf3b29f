package quiz

import (
	"strconv"
	"strings"
)

// Answer is the closed set of user answer shapes. Each question kind accepts
// exactly one shape; the evaluator rejects mismatches.
type Answer interface {
	// Display returns the answer as shown in feedback and summaries.
	Display() string

	sealedAnswer()
}

// TextAnswer is the raw text typed for a free-text question.
type TextAnswer string

func (a TextAnswer) Display() string { return string(a) }
func (TextAnswer) sealedAnswer()     {}

// ChoiceAnswer is the selected option strings for an MCQ question.
type ChoiceAnswer []string

func (a ChoiceAnswer) Display() string { return strings.Join(a, ", ") }
func (ChoiceAnswer) sealedAnswer()     {}

// NumberAnswer is the numeric value chosen for a slider question.
type NumberAnswer float64

func (a NumberAnswer) Display() string { return FormatNumber(float64(a)) }
func (NumberAnswer) sealedAnswer()     {}

// BoolAnswer is the choice made for a true/false question.
type BoolAnswer bool

func (a BoolAnswer) Display() string { return strconv.FormatBool(bool(a)) }
func (BoolAnswer) sealedAnswer()     {}

// FormatNumber renders a float without trailing zeros, so sliders over
// integer ranges read as integers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
