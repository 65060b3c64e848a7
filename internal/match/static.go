package match

import (
	"strings"

	"github.com/ppiankov/msgsweep/internal/corpus"
)

// quoteStyles are the literal delimiters an identifier may appear between in
// source text.
var quoteStyles = []string{`"`, `'`, "`"}

// Static decides whether an identifier occurs as a complete quoted literal
// anywhere in the corpus.
type Static struct{}

// NewStatic creates a new static usage matcher
func NewStatic() *Static {
	return &Static{}
}

// Match reports whether any file contains the identifier bounded by a pair
// of matching quote characters. This is a plain substring search with no
// lexical awareness: the quotes must immediately bound the identifier, which
// is what keeps longer identifiers sharing a prefix from matching.
func (m *Static) Match(id string, c *corpus.Corpus) bool {
	needles := make([]string, len(quoteStyles))
	for i, q := range quoteStyles {
		needles[i] = q + id + q
	}

	for _, f := range c.Files() {
		for _, needle := range needles {
			if strings.Contains(f.Content, needle) {
				return true
			}
		}
	}
	return false
}
