package quiz

import "testing"

func TestAnswerDisplay(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"text", TextAnswer("the mitochondria"), "the mitochondria"},
		{"single choice", ChoiceAnswer{"Paris"}, "Paris"},
		{"several choices", ChoiceAnswer{"a", "b"}, "a, b"},
		{"integer number", NumberAnswer(42), "42"},
		{"fractional number", NumberAnswer(2.5), "2.5"},
		{"bool", BoolAnswer(true), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-3, "-3"},
		{0.1, "0.1"},
		{12.75, "12.75"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
