package judge

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/dverney/quizine/internal/quiz"
)

// geminiModels maps friendly names to Gemini model IDs.
var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiJudge grades free-text answers through the Gemini API.
type GeminiJudge struct {
	client *genai.Client
	model  string
}

// NewGeminiJudge creates a new Gemini judge.
func NewGeminiJudge(ctx context.Context, cfg GeminiConfig) (*GeminiJudge, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiJudge{
		client: client,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

func (j *GeminiJudge) Name() string { return "gemini" }

func (j *GeminiJudge) Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	prompt := BuildPrompt(q, userAnswer, language)

	temp := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := j.client.Models.GenerateContent(ctx, j.model, contents, config)
	if err != nil {
		return nil, &ErrTransport{Provider: j.Name(), Err: err}
	}

	text := result.Text()
	if text == "" {
		return nil, &ErrBadVerdict{
			Provider: j.Name(),
			Err:      fmt.Errorf("empty response text"),
		}
	}

	return ParseVerdict(j.Name(), []byte(text))
}

func (j *GeminiJudge) TestConnection(ctx context.Context) bool {
	config := &genai.GenerateContentConfig{MaxOutputTokens: 10}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: "test"}}},
	}

	_, err := j.client.Models.GenerateContent(ctx, j.model, contents, config)
	return err == nil
}
