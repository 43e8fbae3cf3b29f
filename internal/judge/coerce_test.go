package judge

import (
	"errors"
	"testing"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Verdict
		wantErr bool
	}{
		{
			name: "plain JSON",
			raw:  `{"score": 85, "explanation": "Good answer.", "expectedAnswer": "Paris"}`,
			want: Verdict{Score: 85, Explanation: "Good answer.", ExpectedAnswer: "Paris"},
		},
		{
			name: "fenced with json info string",
			raw:  "```json\n{\"score\": 85, \"explanation\": \"Good.\", \"expectedAnswer\": \"Paris\"}\n```",
			want: Verdict{Score: 85, Explanation: "Good.", ExpectedAnswer: "Paris"},
		},
		{
			name: "fenced without info string",
			raw:  "```\n{\"score\": 100, \"explanation\": \"Perfect.\", \"expectedAnswer\": \"42\"}\n```",
			want: Verdict{Score: 100, Explanation: "Perfect.", ExpectedAnswer: "42"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n{\"score\": 50, \"explanation\": \"Partial.\", \"expectedAnswer\": \"x\"}\n  ",
			want: Verdict{Score: 50, Explanation: "Partial.", ExpectedAnswer: "x"},
		},
		{
			name: "fractional score rounds",
			raw:  `{"score": 87.5, "explanation": "ok", "expectedAnswer": "y"}`,
			want: Verdict{Score: 88, Explanation: "ok", ExpectedAnswer: "y"},
		},
		{
			name: "score above range clamps to 100",
			raw:  `{"score": 150, "explanation": "ok", "expectedAnswer": "y"}`,
			want: Verdict{Score: 100, Explanation: "ok", ExpectedAnswer: "y"},
		},
		{
			name: "negative score clamps to 0",
			raw:  `{"score": -10, "explanation": "ok", "expectedAnswer": "y"}`,
			want: Verdict{Score: 0, Explanation: "ok", ExpectedAnswer: "y"},
		},
		{
			name:    "not JSON",
			raw:     "The answer looks good to me!",
			wantErr: true,
		},
		{
			name:    "missing score",
			raw:     `{"explanation": "ok", "expectedAnswer": "y"}`,
			wantErr: true,
		},
		{
			name:    "missing explanation",
			raw:     `{"score": 80, "expectedAnswer": "y"}`,
			wantErr: true,
		},
		{
			name:    "score is a string",
			raw:     `{"score": "eighty", "explanation": "ok", "expectedAnswer": "y"}`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerdict("test", []byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				var bad *ErrBadVerdict
				if !errors.As(err, &bad) {
					t.Fatalf("expected ErrBadVerdict, got %T (%v)", err, err)
				}
				if bad.Provider != "test" {
					t.Errorf("expected provider 'test', got %q", bad.Provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unfenced passthrough", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"whitespace around fence", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFence(tt.in); got != tt.want {
				t.Errorf("StripFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
