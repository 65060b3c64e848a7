package match

import (
	"testing"

	"github.com/ppiankov/msgsweep/internal/corpus"
)

func corpusOf(files ...corpus.File) *corpus.Corpus {
	return corpus.New(files)
}

func TestStatic_QuoteStyles(t *testing.T) {
	matcher := NewStatic()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"double quoted", `l10n.get("foo-bar")`, true},
		{"single quoted", `l10n.get('foo-bar')`, true},
		{"back quoted", "l10n.get(`foo-bar`)", true},
		{"unquoted", `const id = foo-bar;`, false},
		{"absent", `nothing relevant here`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := corpusOf(corpus.File{Path: "web/app.mjs", Content: tt.content})
			if got := matcher.Match("foo-bar", c); got != tt.want {
				t.Errorf("Match(foo-bar) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatic_QuotesMustBoundIdentifier(t *testing.T) {
	matcher := NewStatic()

	// A longer literal sharing the identifier as a prefix or suffix does
	// not count: the quote characters must immediately bound the text.
	c := corpusOf(corpus.File{
		Path:    "web/app.mjs",
		Content: `get("foo-bar-baz"); get("prefix-foo-bar")`,
	})

	if matcher.Match("foo-bar", c) {
		t.Error("expected no match when quotes do not bound the identifier")
	}
}

func TestStatic_AnyFileInCorpus(t *testing.T) {
	matcher := NewStatic()

	c := corpusOf(
		corpus.File{Path: "web/a.mjs", Content: "unrelated"},
		corpus.File{Path: "web/b.mjs", Content: `t('late-match')`},
	)

	if !matcher.Match("late-match", c) {
		t.Error("expected match in later file")
	}
}

func TestStatic_EmptyCorpus(t *testing.T) {
	matcher := NewStatic()

	if matcher.Match("anything-here", corpusOf()) {
		t.Error("expected no match in empty corpus")
	}
}
