package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dverney/quizine/internal/quiz"
)

// OllamaJudge grades free-text answers through a local Ollama server's
// generate endpoint. There is no Go SDK; the protocol is two small JSON
// shapes over HTTP.
type OllamaJudge struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaJudge creates a new Ollama judge.
func NewOllamaJudge(cfg OllamaConfig) (*OllamaJudge, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ollama base URL is required")
	}

	return &OllamaJudge{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

func (j *OllamaJudge) Name() string { return "ollama" }

// generateRequest is the /api/generate request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// generateResponse is the subset of the /api/generate reply we consume:
// a single string field carrying the generated text, which itself holds
// the verdict JSON.
type generateResponse struct {
	Response string `json:"response"`
}

func (j *OllamaJudge) Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error) {
	prompt := BuildPrompt(q, userAnswer, language)

	body, err := json.Marshal(generateRequest{
		Model:  j.model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, &ErrTransport{Provider: j.Name(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrTransport{Provider: j.Name(), Status: resp.StatusCode}
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return nil, &ErrBadVerdict{
			Provider: j.Name(),
			Err:      fmt.Errorf("decode response: %w", err),
		}
	}
	if gen.Response == "" {
		return nil, &ErrBadVerdict{
			Provider: j.Name(),
			Err:      fmt.Errorf("empty response field"),
		}
	}

	return ParseVerdict(j.Name(), []byte(gen.Response))
}

// TestConnection checks that the server is reachable; listing local models
// is the cheapest request the API offers.
func (j *OllamaJudge) TestConnection(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}
