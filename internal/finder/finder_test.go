package finder

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = "title: t\nscoring: {}\nquestions:\n  - type: true-false\n    q: x\n    answer: true\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", validYAML)
	writeFile(t, dir, "sub/a.md", "# Notes\n\n```quiz\n"+validYAML+"```\n")
	writeFile(t, dir, "notes.md", "# Just a note, no quiz here.\n")
	writeFile(t, dir, "readme.txt", "not a quiz candidate")

	entries, problems := Discover(dir)

	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Sorted by path: b.yaml before sub/a.md.
	if filepath.Base(entries[0].Path) != "b.yaml" {
		t.Errorf("entries[0] = %s", entries[0].Path)
	}
	if filepath.Base(entries[1].Path) != "a.md" {
		t.Errorf("entries[1] = %s", entries[1].Path)
	}
	for _, e := range entries {
		if e.Quiz == nil || e.Quiz.Title != "t" {
			t.Errorf("%s: quiz not parsed", e.Path)
		}
	}
}

// A broken quiz file is reported but never hides valid siblings.
func TestDiscoverReportsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", validYAML)
	writeFile(t, dir, "broken.yaml", "title: t\nquestions: oops\n")

	entries, problems := Discover(dir)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
}

func TestDiscoverSkipsDotDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".obsidian/hidden.yaml", validYAML)
	writeFile(t, dir, "visible.yaml", validYAML)

	entries, problems := Discover(dir)

	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if len(entries) != 1 || filepath.Base(entries[0].Path) != "visible.yaml" {
		t.Errorf("entries = %v", entries)
	}
}

func TestDiscoverPath(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "one.yaml", validYAML)

	t.Run("single file", func(t *testing.T) {
		entries, problems := DiscoverPath(file)
		if len(problems) != 0 {
			t.Fatalf("unexpected problems: %v", problems)
		}
		if len(entries) != 1 || entries[0].Path != file {
			t.Errorf("entries = %v", entries)
		}
	})

	t.Run("folder", func(t *testing.T) {
		entries, problems := DiscoverPath(dir)
		if len(problems) != 0 {
			t.Fatalf("unexpected problems: %v", problems)
		}
		if len(entries) != 1 {
			t.Errorf("got %d entries", len(entries))
		}
	})

	t.Run("single broken file is an error", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.md", "# no quiz\n")
		entries, problems := DiscoverPath(bad)
		if len(entries) != 0 || len(problems) != 1 {
			t.Errorf("entries=%v problems=%v", entries, problems)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, problems := DiscoverPath(filepath.Join(dir, "nope"))
		if len(problems) != 1 {
			t.Errorf("problems = %v", problems)
		}
	})
}
