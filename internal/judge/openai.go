package judge

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dverney/quizine/internal/quiz"
)

// OpenAIJudge grades free-text answers through the chat-completions API.
// It also covers OpenAI-compatible endpoints via BaseURL.
type OpenAIJudge struct {
	client *openai.Client
	model  string
}

// NewOpenAIJudge creates a new OpenAI judge.
func NewOpenAIJudge(cfg OpenAIConfig) (*OpenAIJudge, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIJudge{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

func (j *OpenAIJudge) Name() string { return "openai" }

func (j *OpenAIJudge) Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	prompt := BuildPrompt(q, userAnswer, language)

	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: j.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, j.mapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrBadVerdict{
			Provider: j.Name(),
			Err:      fmt.Errorf("no choices in response"),
		}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, &ErrBadVerdict{
			Provider: j.Name(),
			Err:      fmt.Errorf("empty message content"),
		}
	}

	return ParseVerdict(j.Name(), []byte(content))
}

func (j *OpenAIJudge) TestConnection(ctx context.Context) bool {
	_, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: j.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "test"},
		},
		MaxTokens: 5,
	})
	return err == nil
}

func (j *OpenAIJudge) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ErrTransport{Provider: j.Name(), Status: apiErr.HTTPStatusCode, Err: err}
	}
	return &ErrTransport{Provider: j.Name(), Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
