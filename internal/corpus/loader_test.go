package corpus

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/ppiankov/msgsweep/internal/cache"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
	return fs
}

func TestLoader_FiltersByExtension(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"web/app.mjs":    "a",
		"web/index.html": "b",
		"web/notes.txt":  "c",
		"web/img.png":    "d",
	})

	loader := NewLoader(fs, []string{".mjs", ".html"}, nil)

	c, err := loader.Load([]string{"web"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", c.Len())
	}
	for _, f := range c.Files() {
		if f.Path == "web/notes.txt" || f.Path == "web/img.png" {
			t.Errorf("unexpected file %s in corpus", f.Path)
		}
	}
}

func TestLoader_DeterministicOrder(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"web/z.mjs":       "z",
		"web/a.mjs":       "a",
		"web/sub/m.mjs":   "m",
		"src/widgets.mjs": "w",
	})

	loader := NewLoader(fs, []string{".mjs"}, nil)

	first, err := loader.Load([]string{"web", "src"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := loader.Load([]string{"web", "src"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("expected identical corpora, got %d and %d files", first.Len(), second.Len())
	}
	for i := range first.Files() {
		if first.Files()[i].Path != second.Files()[i].Path {
			t.Errorf("order differs at %d: %s vs %s", i, first.Files()[i].Path, second.Files()[i].Path)
		}
	}

	// Roots are walked in their configured order
	if first.Files()[first.Len()-1].Path != "src/widgets.mjs" {
		t.Errorf("expected src root walked after web, got trailing %s", first.Files()[first.Len()-1].Path)
	}
}

func TestLoader_MissingRootIsFatal(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), []string{".mjs"}, nil)

	if _, err := loader.Load([]string{"no-such-dir"}); err == nil {
		t.Error("expected error for missing search root")
	}
}

func TestLoader_ServesUnchangedFilesFromCache(t *testing.T) {
	fs := newTestFs(t, map[string]string{"web/app.mjs": "original"})

	loader := NewLoader(fs, []string{".mjs"}, cache.NewMemoryCache(time.Minute, time.Minute))

	first, err := loader.Load([]string{"web"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := loader.Load([]string{"web"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.Files()[0].Content != "original" || second.Files()[0].Content != "original" {
		t.Error("expected cached reload to return identical content")
	}
}

func TestLoader_CacheMissesOnModification(t *testing.T) {
	fs := newTestFs(t, map[string]string{"web/app.mjs": "original"})

	loader := NewLoader(fs, []string{".mjs"}, cache.NewMemoryCache(time.Minute, time.Minute))

	if _, err := loader.Load([]string{"web"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// A different size changes the stat key, so the edit must be seen
	if err := afero.WriteFile(fs, "web/app.mjs", []byte("rewritten content"), 0644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	c, err := loader.Load([]string{"web"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Files()[0].Content != "rewritten content" {
		t.Errorf("expected fresh content after modification, got %q", c.Files()[0].Content)
	}
}
