// Package finder discovers quiz files under a folder.
package finder

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dverney/quizine/internal/parser"
	"github.com/dverney/quizine/internal/quiz"
)

// Entry pairs a parsed quiz with the file it came from.
type Entry struct {
	Path string
	Quiz *quiz.Quiz
}

// Discover walks root recursively and parses every quiz file it finds.
// Files that fail to parse are skipped and reported in the second return
// value so one broken file doesn't hide the rest.
func Discover(root string) ([]Entry, []error) {
	var entries []Entry
	var problems []error

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !isQuizCandidate(path) {
			return nil
		}

		q, perr := parser.ParseFile(path)
		if perr != nil {
			// Markdown files without an embedded quiz are normal notes,
			// not errors.
			if isMarkdown(path) && strings.Contains(perr.Error(), "no quiz definition") {
				return nil
			}
			problems = append(problems, fmt.Errorf("%s: %w", path, perr))
			return nil
		}

		entries = append(entries, Entry{Path: path, Quiz: q})
		return nil
	})
	if err != nil {
		problems = append(problems, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, problems
}

// DiscoverPath handles both a single file and a folder.
func DiscoverPath(path string) ([]Entry, []error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, []error{err}
	}
	if info.IsDir() {
		return Discover(path)
	}

	q, err := parser.ParseFile(path)
	if err != nil {
		return nil, []error{err}
	}
	return []Entry{{Path: path, Quiz: q}}, nil
}

func isQuizCandidate(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".yaml", ".yml":
		return true
	}
	return false
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
