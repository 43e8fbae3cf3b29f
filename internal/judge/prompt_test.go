package judge

import (
	"strings"
	"testing"

	"github.com/dverney/quizine/internal/quiz"
)

func TestBuildPrompt(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:    quiz.Base{Text: "What is the capital of France?", Wt: 1},
		Answer:  "Paris",
		Context: "European geography",
	}

	prompt := BuildPrompt(q, "I think it is Paris", "English")

	wantParts := []string{
		"expert quiz evaluator",
		"You MUST respond entirely in English",
		"Question: What is the capital of France?",
		"Expected Answer: Paris",
		"Additional Context: European geography",
		"User's Answer: I think it is Paris",
		`"score": <number 0-100>`,
		"- 100: Perfect or near-perfect answer",
		"- 70-99: Good answer with minor issues",
		"- 40-69: Partial understanding, missing key elements",
		"- 0-39: Incorrect or very incomplete",
		"Respond ONLY with JSON",
	}
	for _, part := range wantParts {
		if !strings.Contains(prompt, part) {
			t.Errorf("prompt missing %q", part)
		}
	}
}

func TestBuildPromptWithoutContext(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Define osmosis.", Wt: 1},
		Answer: "Diffusion of water across a membrane",
	}

	prompt := BuildPrompt(q, "water moves", "English")

	if strings.Contains(prompt, "Additional Context") {
		t.Error("prompt should omit the context section when none is set")
	}
}

func TestBuildPromptLanguage(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Question?", Wt: 1},
		Answer: "Answer",
	}

	prompt := BuildPrompt(q, "réponse", "Français")

	if !strings.Contains(prompt, "You MUST respond entirely in Français") {
		t.Error("prompt should carry the language directive verbatim")
	}
	if !strings.Contains(prompt, "Everything must be in Français") {
		t.Error("prompt should repeat the language in the critical section")
	}
}
