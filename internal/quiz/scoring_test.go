package quiz

import "testing"

func TestStatusFor(t *testing.T) {
	scoring := Scoring{MinScoreToPass: 80, MinScoreToFail: 60}

	tests := []struct {
		score float64
		want  Status
	}{
		{0, StatusFailed},
		{59.9, StatusFailed},
		{60, StatusImprecise},
		{79.9, StatusImprecise},
		{80, StatusPassed},
		{100, StatusPassed},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.score, scoring); got != tt.want {
			t.Errorf("StatusFor(%g) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// Every score in [0,100] maps to exactly one status, and the partition
// boundaries sit exactly on the thresholds.
func TestStatusForPartition(t *testing.T) {
	scoring := Scoring{MinScoreToPass: 75, MinScoreToFail: 50}

	for score := 0; score <= 100; score++ {
		got := StatusFor(float64(score), scoring)

		var want Status
		switch {
		case score >= 75:
			want = StatusPassed
		case score >= 50:
			want = StatusImprecise
		default:
			want = StatusFailed
		}

		if got != want {
			t.Fatalf("StatusFor(%d) = %q, want %q", score, got, want)
		}
	}
}

// With pass == fail the imprecise band is empty and no score reaches it.
func TestStatusForDegenerateThresholds(t *testing.T) {
	scoring := Scoring{MinScoreToPass: 70, MinScoreToFail: 70}

	for score := 0; score <= 100; score++ {
		got := StatusFor(float64(score), scoring)
		if got == StatusImprecise {
			t.Fatalf("score %d classified imprecise with an empty band", score)
		}
	}
	if StatusFor(70, scoring) != StatusPassed {
		t.Error("score at the shared threshold should pass")
	}
	if StatusFor(69, scoring) != StatusFailed {
		t.Error("score below the shared threshold should fail")
	}
}

func TestDefaultScoring(t *testing.T) {
	s := DefaultScoring()
	if s.MinScoreToPass != 80 || s.MinScoreToFail != 60 {
		t.Errorf("DefaultScoring() = %+v, want pass 80 / fail 60", s)
	}
}
