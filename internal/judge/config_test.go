package judge

import (
	"context"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZINE_JUDGE", "ollama")
	t.Setenv("QUIZINE_LANGUAGE", "Français")
	t.Setenv("QUIZINE_OLLAMA_URL", "http://box:11434")
	t.Setenv("QUIZINE_OLLAMA_MODEL", "mistral")

	cfg := ConfigFromEnv()

	if cfg.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %q", cfg.Provider)
	}
	if cfg.Language != "Français" {
		t.Errorf("expected language Français, got %q", cfg.Language)
	}
	if cfg.Ollama.BaseURL != "http://box:11434" {
		t.Errorf("expected base URL http://box:11434, got %q", cfg.Ollama.BaseURL)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("expected model mistral, got %q", cfg.Ollama.Model)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("QUIZINE_JUDGE", "")
	t.Setenv("QUIZINE_LANGUAGE", "")

	cfg := ConfigFromEnv()

	if cfg.Provider != "openai" {
		t.Errorf("expected default provider openai, got %q", cfg.Provider)
	}
	if cfg.Language != "English" {
		t.Errorf("expected default language English, got %q", cfg.Language)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", cfg.OpenAI.Model)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("expected default ollama URL, got %q", cfg.Ollama.BaseURL)
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic (priority over gemini), got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-ant-test" {
		t.Errorf("expected discovered key, got %q", cfg.Anthropic.APIKey)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"ollama with default URL", func(c *Config) { c.Provider = "ollama" }, false},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"mock", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "copilot" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "copilot"

	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewMockProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	j, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Name() != "mock" {
		t.Errorf("expected mock judge, got %q", j.Name())
	}
}
