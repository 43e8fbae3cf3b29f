package quiz

// Status is the three-way verdict derived from a score and the quiz's
// thresholds. The same partition applies per-question and quiz-wide.
type Status string

const (
	StatusPassed    Status = "passed"
	StatusImprecise Status = "imprecise"
	StatusFailed    Status = "failed"
)

// Scoring holds the two thresholds that partition [0,100] into the three
// statuses. Invariant: MinScoreToPass >= MinScoreToFail.
type Scoring struct {
	MinScoreToPass int
	MinScoreToFail int
}

// DefaultScoring matches the thresholds applied when a quiz omits them.
func DefaultScoring() Scoring {
	return Scoring{MinScoreToPass: 80, MinScoreToFail: 60}
}

// StatusFor classifies a score: passed at or above MinScoreToPass, failed
// below MinScoreToFail, imprecise in between.
func StatusFor(score float64, s Scoring) Status {
	switch {
	case score >= float64(s.MinScoreToPass):
		return StatusPassed
	case score >= float64(s.MinScoreToFail):
		return StatusImprecise
	default:
		return StatusFailed
	}
}
