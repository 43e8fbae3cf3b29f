package judge

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// verdictSchemaDef is the JSON Schema every judge response must satisfy.
var verdictSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"score", "explanation", "expectedAnswer"},
	"properties": map[string]any{
		"score":          map[string]any{"type": "number"},
		"explanation":    map[string]any{"type": "string"},
		"expectedAnswer": map[string]any{"type": "string"},
	},
}

var (
	verdictSchemaOnce sync.Once
	verdictSchema     *jsonschema.Schema
	verdictSchemaErr  error
)

// compiledVerdictSchema compiles the verdict schema once and caches it.
func compiledVerdictSchema() (*jsonschema.Schema, error) {
	verdictSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://verdict.json", verdictSchemaDef); err != nil {
			verdictSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		verdictSchema, verdictSchemaErr = c.Compile("schema://verdict.json")
	})
	return verdictSchema, verdictSchemaErr
}

// ParseVerdict coerces a provider's raw text output into a Verdict.
// Judges answer in free-form text, so the payload may arrive wrapped in a
// fenced code block; the fence is stripped before decoding. Any structural
// deviation is an *ErrBadVerdict; a verdict is never guessed from a
// response that fails to parse.
func ParseVerdict(provider string, raw []byte) (*Verdict, error) {
	text := StripFence(string(raw))

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &ErrBadVerdict{
			Provider: provider,
			Content:  raw,
			Err:      fmt.Errorf("invalid JSON: %w", err),
		}
	}

	schema, err := compiledVerdictSchema()
	if err != nil {
		return nil, &ErrBadVerdict{Provider: provider, Content: raw, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrBadVerdict{
			Provider: provider,
			Content:  raw,
			Err:      fmt.Errorf("schema validation failed: %w", err),
		}
	}

	// The schema admits fractional scores; decode as float and round so a
	// judge answering 87.5 is not rejected.
	var decoded struct {
		Score          float64 `json:"score"`
		Explanation    string  `json:"explanation"`
		ExpectedAnswer string  `json:"expectedAnswer"`
	}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, &ErrBadVerdict{Provider: provider, Content: raw, Err: err}
	}

	return &Verdict{
		Score:          ClampScore(int(decoded.Score + 0.5)),
		Explanation:    decoded.Explanation,
		ExpectedAnswer: decoded.ExpectedAnswer,
	}, nil
}

// StripFence removes an optional leading/trailing markdown code fence.
// An unfenced payload passes through unchanged.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json") up to the first newline.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || !strings.ContainsAny(first, "{}") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ClampScore bounds an untrusted score into [0,100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
