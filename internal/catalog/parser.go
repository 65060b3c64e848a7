package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// declarationPattern matches an identifier declaration anchored at the start
// of a line. Indented lines are continuations or attributes in the catalog
// format and never start a new declaration, so no leading whitespace is
// permitted.
var declarationPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*)\s*=`)

// Parser extracts declared message identifiers from catalog text
type Parser struct {
	fs afero.Fs
}

// NewParser creates a parser reading through the given filesystem
func NewParser(fs afero.Fs) *Parser {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Parser{fs: fs}
}

// Parse returns the declared identifiers in first-appearance order.
// Duplicates are preserved; comments, blank lines, and anything else that is
// not a declaration are silently skipped.
func (p *Parser) Parse(text string) []string {
	var ids []string
	for _, line := range strings.Split(text, "\n") {
		if m := declarationPattern.FindStringSubmatch(line); m != nil {
			ids = append(ids, m[1])
		}
	}
	return ids
}

// ParseFile reads and parses the catalog at path. A read failure is fatal to
// the run and is returned wrapped; the engine never proceeds on partial data.
func (p *Parser) ParseFile(path string) ([]string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return p.Parse(string(data)), nil
}
