// Package parser decodes quiz definitions: YAML documents, either standalone
// or embedded in markdown via a fenced quiz block or frontmatter.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dverney/quizine/internal/quiz"
)

// quizDoc mirrors the YAML layout. Both formats are accepted: a "quiz:"
// root key or the properties at document top level.
type quizDoc struct {
	Quiz        *quizDoc      `yaml:"quiz"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Scoring     *scoringDoc   `yaml:"scoring"`
	Questions   []questionDoc `yaml:"questions"`
}

type scoringDoc struct {
	MinScoreToPass *int `yaml:"min_score_to_pass"`
	MinScoreToFail *int `yaml:"min_score_to_fail"`
}

// questionDoc holds the superset of fields across question kinds. Answer is
// polymorphic (string, list, number or bool), so it stays a yaml.Node until
// the kind is known.
type questionDoc struct {
	Type      string    `yaml:"type"`
	Q         string    `yaml:"q"`
	Answer    yaml.Node `yaml:"answer"`
	Context   string    `yaml:"context"`
	Options   []string  `yaml:"options"`
	Multiple  bool      `yaml:"multiple"`
	Min       *float64  `yaml:"min"`
	Max       *float64  `yaml:"max"`
	Step      *float64  `yaml:"step"`
	Tolerance *float64  `yaml:"tolerance"`
	Weight    *float64  `yaml:"weight"`
}

// ParseYAML decodes and validates a quiz definition.
func ParseYAML(content []byte) (*quiz.Quiz, error) {
	var doc quizDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse quiz YAML: %w", err)
	}

	data := &doc
	if doc.Quiz != nil {
		data = doc.Quiz
	}

	if data.Title == "" {
		return nil, fmt.Errorf("quiz must have a title")
	}
	if data.Scoring == nil {
		return nil, fmt.Errorf("quiz must have scoring configuration")
	}
	if len(data.Questions) == 0 {
		return nil, fmt.Errorf("quiz must have a questions array")
	}

	scoring := quiz.DefaultScoring()
	if data.Scoring.MinScoreToPass != nil {
		scoring.MinScoreToPass = *data.Scoring.MinScoreToPass
	}
	if data.Scoring.MinScoreToFail != nil {
		scoring.MinScoreToFail = *data.Scoring.MinScoreToFail
	}

	questions := make([]quiz.Question, 0, len(data.Questions))
	for i, qd := range data.Questions {
		q, err := parseQuestion(qd, i)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	parsed := &quiz.Quiz{
		Title:       data.Title,
		Description: data.Description,
		Scoring:     scoring,
		Questions:   questions,
	}
	if err := quiz.Validate(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func parseQuestion(d questionDoc, index int) (quiz.Question, error) {
	n := index + 1

	if d.Q == "" {
		return nil, fmt.Errorf("question %d must have a \"q\" field", n)
	}

	weight := 1.0
	if d.Weight != nil {
		weight = *d.Weight
	}
	base := quiz.Base{Text: d.Q, Wt: weight}

	switch quiz.Kind(d.Type) {
	case quiz.KindFreeText:
		var answer string
		if err := d.Answer.Decode(&answer); err != nil || answer == "" {
			return nil, fmt.Errorf("question %d (free-text) answer must be a string", n)
		}
		return quiz.FreeTextQuestion{Base: base, Answer: answer, Context: d.Context}, nil

	case quiz.KindMCQ:
		var answer []string
		if err := d.Answer.Decode(&answer); err != nil {
			return nil, fmt.Errorf("question %d (mcq) answer must be a list of options", n)
		}
		return quiz.MCQQuestion{
			Base:     base,
			Options:  d.Options,
			Answer:   answer,
			Multiple: d.Multiple,
		}, nil

	case quiz.KindSlider:
		var answer float64
		if err := d.Answer.Decode(&answer); err != nil {
			return nil, fmt.Errorf("question %d (slider) answer must be a number", n)
		}
		if d.Min == nil || d.Max == nil {
			return nil, fmt.Errorf("question %d (slider) must have min and max values", n)
		}
		step := 1.0
		if d.Step != nil {
			step = *d.Step
		}
		return quiz.SliderQuestion{
			Base:      base,
			Answer:    answer,
			Min:       *d.Min,
			Max:       *d.Max,
			Step:      step,
			Tolerance: d.Tolerance,
		}, nil

	case quiz.KindTrueFalse:
		var answer bool
		if err := d.Answer.Decode(&answer); err != nil {
			return nil, fmt.Errorf("question %d (true-false) answer must be a boolean", n)
		}
		return quiz.TrueFalseQuestion{Base: base, Answer: answer}, nil

	default:
		return nil, fmt.Errorf("question %d has invalid type: %q", n, d.Type)
	}
}

var (
	quizBlockRe   = regexp.MustCompile("```quiz\\s*\\n([\\s\\S]*?)\\n```")
	frontmatterRe = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---`)
)

// ExtractFromMarkdown pulls the quiz YAML out of a markdown document.
// A fenced quiz code block wins; otherwise YAML frontmatter is accepted when
// it looks like a quiz definition. Returns false when neither is present.
func ExtractFromMarkdown(content string) (string, bool) {
	if m := quizBlockRe.FindStringSubmatch(content); m != nil {
		return m[1], true
	}

	if m := frontmatterRe.FindStringSubmatch(content); m != nil {
		body := m[1]
		if strings.Contains(body, "quiz:") || strings.Contains(body, "title:") {
			return body, true
		}
	}

	return "", false
}

// ParseFile loads a quiz from a file. Markdown files must embed a quiz
// definition; .yaml/.yml files are parsed whole.
func ParseFile(path string) (*quiz.Quiz, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		body, ok := ExtractFromMarkdown(string(content))
		if !ok {
			return nil, fmt.Errorf("%s: no quiz definition found", path)
		}
		return ParseYAML([]byte(body))
	case ".yaml", ".yml":
		return ParseYAML(content)
	default:
		return nil, fmt.Errorf("%s: unsupported file type", path)
	}
}
