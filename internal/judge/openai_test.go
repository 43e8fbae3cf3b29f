package judge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dverney/quizine/internal/quiz"
)

func newTestOpenAIJudge(t *testing.T, handler http.HandlerFunc) *OpenAIJudge {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAIJudge{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func testFreeTextQuestion() quiz.FreeTextQuestion {
	return quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "What is the capital of France?", Wt: 1},
		Answer: "Paris",
	}
}

func TestOpenAIJudge_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"score": 90, "explanation": "Correct.", "expectedAnswer": "Paris"}`,
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	j := newTestOpenAIJudge(t, handler)
	verdict, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Score != 90 {
		t.Errorf("expected score 90, got %d", verdict.Score)
	}
	if verdict.ExpectedAnswer != "Paris" {
		t.Errorf("expected answer 'Paris', got %q", verdict.ExpectedAnswer)
	}
}

func TestOpenAIJudge_FencedContent(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "```json\n{\"score\": 70, \"explanation\": \"Mostly right.\", \"expectedAnswer\": \"Paris\"}\n```",
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	j := newTestOpenAIJudge(t, handler)
	verdict, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "paris?", "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Score != 70 {
		t.Errorf("expected score 70, got %d", verdict.Score)
	}
}

func TestOpenAIJudge_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	j := newTestOpenAIJudge(t, handler)
	_, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err == nil {
		t.Fatal("expected error")
	}
	var transport *ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected ErrTransport, got %T (%v)", err, err)
	}
	if transport.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", transport.Status)
	}
}

func TestOpenAIJudge_GarbageContent(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "Great answer, well done!",
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	j := newTestOpenAIJudge(t, handler)
	_, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err == nil {
		t.Fatal("expected error")
	}
	var bad *ErrBadVerdict
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadVerdict, got %T (%v)", err, err)
	}
}

func TestNewOpenAIJudge_RequiresKey(t *testing.T) {
	_, err := NewOpenAIJudge(OpenAIConfig{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

// The configured model is used verbatim, covering custom IDs on
// OpenAI-compatible endpoints.
func TestNewOpenAIJudge_ModelPassthrough(t *testing.T) {
	j, err := NewOpenAIJudge(OpenAIConfig{APIKey: "test-key", Model: "my-local-model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.model != "my-local-model" {
		t.Errorf("model = %q, want it passed through unchanged", j.model)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-3-5-sonnet-20241022", "claude-3-5-sonnet-20241022"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
