package judge

import (
	"fmt"
	"strings"

	"github.com/dverney/quizine/internal/quiz"
)

// BuildPrompt constructs the shared grading prompt. Every provider sends
// exactly this text so the rubric and language handling cannot diverge.
func BuildPrompt(q quiz.FreeTextQuestion, userAnswer, language string) string {
	var b strings.Builder

	b.WriteString("You are an expert quiz evaluator. Evaluate the following answer.\n\n")
	fmt.Fprintf(&b, "IMPORTANT: You MUST respond entirely in %s.\n\n", language)
	fmt.Fprintf(&b, "Question: %s\n\n", q.Prompt())
	fmt.Fprintf(&b, "Expected Answer: %s\n\n", q.Answer)

	if q.Context != "" {
		fmt.Fprintf(&b, "Additional Context: %s\n\n", q.Context)
	}

	fmt.Fprintf(&b, "User's Answer: %s\n\n", userAnswer)

	b.WriteString("Evaluate and respond with this exact JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("    \"score\": <number 0-100>,\n")
	fmt.Fprintf(&b, "    \"explanation\": \"<brief feedback in %s, 1-2 sentences max>\",\n", language)
	fmt.Fprintf(&b, "    \"expectedAnswer\": \"<the correct answer in %s, concise>\"\n", language)
	b.WriteString("}\n\n")

	b.WriteString("Scoring guidelines:\n")
	b.WriteString("- 100: Perfect or near-perfect answer\n")
	b.WriteString("- 70-99: Good answer with minor issues\n")
	b.WriteString("- 40-69: Partial understanding, missing key elements\n")
	b.WriteString("- 0-39: Incorrect or very incomplete\n\n")

	b.WriteString("CRITICAL:\n")
	b.WriteString("- Respond ONLY with JSON, no other text\n")
	b.WriteString("- Keep explanation SHORT (1-2 sentences)\n")
	b.WriteString("- expectedAnswer should be the ANSWER only, not your reasoning\n")
	fmt.Fprintf(&b, "- Everything must be in %s", language)

	return b.String()
}
