package judge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOllamaJudge(t *testing.T, handler http.HandlerFunc) *OllamaJudge {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	j, err := NewOllamaJudge(OllamaConfig{BaseURL: server.URL, Model: "llama3.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return j
}

func TestOllamaJudge_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "llama3.2" {
			t.Errorf("expected model llama3.2, got %q", req.Model)
		}
		if req.Stream {
			t.Error("expected stream=false")
		}
		if req.Format != "json" {
			t.Errorf("expected format json, got %q", req.Format)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{
			Response: `{"score": 60, "explanation": "Partially right.", "expectedAnswer": "Paris"}`,
		})
	}

	j := newTestOllamaJudge(t, handler)
	verdict, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "a city in France", "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Score != 60 {
		t.Errorf("expected score 60, got %d", verdict.Score)
	}
}

func TestOllamaJudge_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	j := newTestOllamaJudge(t, handler)
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

func TestOllamaJudge_EmptyResponseField(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{Response: ""})
	}

	j := newTestOllamaJudge(t, handler)
	_, err := j.Evaluate(context.Background(), testFreeTextQuestion(), "Paris", "English")
	if err == nil {
		t.Fatal("expected error")
	}
	var bad *ErrBadVerdict
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadVerdict, got %T (%v)", err, err)
	}
}

func TestOllamaJudge_TestConnection(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}

	j := newTestOllamaJudge(t, handler)
	if !j.TestConnection(context.Background()) {
		t.Error("expected TestConnection to succeed")
	}
}

func TestOllamaJudge_TestConnectionDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	j, err := NewOllamaJudge(OllamaConfig{BaseURL: server.URL, Model: "llama3.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.TestConnection(context.Background()) {
		t.Error("expected TestConnection to fail against a closed server")
	}
}

func TestNewOllamaJudge_RequiresBaseURL(t *testing.T) {
	_, err := NewOllamaJudge(OllamaConfig{Model: "llama3.2"})
	if err == nil {
		t.Fatal("expected error for missing base URL")
	}
}
