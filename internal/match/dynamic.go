package match

import (
	"strings"

	"github.com/ppiankov/msgsweep/internal/corpus"
	"github.com/ppiankov/msgsweep/internal/model"
)

// Dynamic searches for evidence that an identifier is assembled at runtime
// from a fixed prefix, an interpolated middle segment, and a fixed suffix.
// It is consulted only for identifiers that failed the static match.
type Dynamic struct {
	minFragment int
	marker      string
}

// NewDynamic creates a dynamic usage matcher. minFragment is the shortest
// prefix or non-empty suffix accepted as evidence; marker is the token that
// opens a variable substitution in the scanned sources (e.g. "${").
func NewDynamic(minFragment int, marker string) *Dynamic {
	return &Dynamic{
		minFragment: minFragment,
		marker:      marker,
	}
}

// fragment is one decomposition of an identifier: a dash-terminated prefix,
// a discarded variable gap, and an optional dash-led suffix.
type fragment struct {
	prefix string
	suffix string // empty means trailing interpolation with no fixed tail
}

// candidates lazily enumerates the decompositions of an identifier in
// tie-break order: smallest prefix cut i first, then smallest suffix cut j.
// Decompositions whose fixed context is too short to be meaningful evidence
// are skipped here, so next only ever yields admissible fragments.
type candidates struct {
	parts       []string
	minFragment int
	i, j        int
}

func newCandidates(id string, minFragment int) *candidates {
	return &candidates{
		parts:       strings.Split(id, "-"),
		minFragment: minFragment,
		i:           1,
		j:           1, // advanced to i+1 on the first call
	}
}

// next returns the next admissible fragment in enumeration order. An
// identifier with no dash has a single component and yields nothing.
func (c *candidates) next() (fragment, bool) {
	n := len(c.parts)
	for ; c.i < n; c.i++ {
		prefix := strings.Join(c.parts[:c.i], "-") + "-"
		if len(prefix) < c.minFragment {
			continue
		}
		if c.j <= c.i {
			c.j = c.i + 1
		}
		for ; c.j <= n; c.j++ {
			suffix := ""
			if c.j < n {
				suffix = "-" + strings.Join(c.parts[c.j:], "-")
				if len(suffix) < c.minFragment {
					continue
				}
			}
			c.j++
			return fragment{prefix: prefix, suffix: suffix}, true
		}
		c.j = 0
	}
	return fragment{}, false
}

// Find returns the first location at which some decomposition of id matches
// the corpus. The outer loop follows candidate enumeration order and the
// inner loop follows corpus file order; the first (candidate, file) pair to
// satisfy the containment tests wins, which makes the reported location
// deterministic across runs.
//
// A file matches a candidate when its content contains the prefix
// immediately followed by the interpolation marker, and, for a non-empty
// suffix, also contains the suffix anywhere in the same file. Suffix
// containment is deliberately file-wide rather than bound to the prefix
// match; tightening it would change which identifiers are rescued from the
// unused list.
func (m *Dynamic) Find(id string, c *corpus.Corpus) (model.MatchLocation, bool) {
	it := newCandidates(id, m.minFragment)
	for frag, ok := it.next(); ok; frag, ok = it.next() {
		needle := frag.prefix + m.marker
		for _, f := range c.Files() {
			idx := strings.Index(f.Content, needle)
			if idx < 0 {
				continue
			}
			if frag.suffix != "" && !strings.Contains(f.Content, frag.suffix) {
				continue
			}
			return model.MatchLocation{
				Path: f.Path,
				Line: 1 + strings.Count(f.Content[:idx], "\n"),
			}, true
		}
	}
	return model.MatchLocation{}, false
}
