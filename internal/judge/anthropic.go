package judge

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dverney/quizine/internal/quiz"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// AnthropicJudge grades free-text answers through the messages API.
type AnthropicJudge struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicJudge creates a new Anthropic judge.
func NewAnthropicJudge(cfg AnthropicConfig) (*AnthropicJudge, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &AnthropicJudge{
		client: &client,
		model:  resolveModel(cfg.Model, anthropicModels),
	}, nil
}

func (j *AnthropicJudge) Name() string { return "anthropic" }

func (j *AnthropicJudge) Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	prompt := BuildPrompt(q, userAnswer, language)

	msg, err := j.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(j.model),
		MaxTokens:   1024,
		Temperature: anthropic.Float(0.3),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(prompt),
				},
			},
		},
	})
	if err != nil {
		return nil, j.mapError(err)
	}

	// The response may interleave block types; grade from the first text
	// block and ignore the rest.
	for _, block := range msg.Content {
		if block.Type == "text" {
			return ParseVerdict(j.Name(), []byte(block.Text))
		}
	}

	return nil, &ErrBadVerdict{
		Provider: j.Name(),
		Err:      fmt.Errorf("no text content block in response"),
	}
}

func (j *AnthropicJudge) TestConnection(ctx context.Context) bool {
	_, err := j.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(j.model),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock("test"),
				},
			},
		},
	})
	return err == nil
}

func (j *AnthropicJudge) mapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &ErrTransport{Provider: j.Name(), Status: apiErr.StatusCode, Err: err}
	}
	return &ErrTransport{Provider: j.Name(), Err: err}
}
