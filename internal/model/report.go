package model

import "time"

// State classifies how a declared message identifier is referenced
type State string

const (
	StateUsed    State = "used"    // Exact quoted literal found in the corpus
	StateDynamic State = "dynamic" // Identifier plausibly assembled at runtime
	StateUnused  State = "unused"  // No static or dynamic evidence found
)

// MatchLocation is the first place a dynamic construction pattern was
// confirmed. Line is 1-based, counted by newlines preceding the match offset.
type MatchLocation struct {
	Path string `json:"path"`
	Line int    `json:"line"`
}

// Classification is the verdict for one declared identifier. Exactly one
// State applies; Location is set only for StateDynamic.
type Classification struct {
	ID       string         `json:"id"`
	State    State          `json:"state"`
	Location *MatchLocation `json:"location,omitempty"`
}

// Summary holds the per-state counts of a report
type Summary struct {
	Used    int `json:"used"`
	Dynamic int `json:"dynamic"`
	Unused  int `json:"unused"`
}

// Report represents the complete result of one sweep
type Report struct {
	CatalogPath  string           `json:"catalog_path"`
	ScannedAt    time.Time        `json:"scanned_at"`
	MessageCount int              `json:"message_count"` // Declared identifiers, duplicates included
	FileCount    int              `json:"file_count"`    // Source files scanned
	Results      []Classification `json:"results"`       // Catalog declaration order
	Summary      Summary          `json:"summary"`
}

// HasUnused reports whether any identifier was classified unused
func (r *Report) HasUnused() bool {
	return r.Summary.Unused > 0
}

// Dynamic returns the likely-dynamic classifications in declaration order
func (r *Report) Dynamic() []Classification {
	return r.filter(StateDynamic)
}

// Unused returns the unused classifications in declaration order
func (r *Report) Unused() []Classification {
	return r.filter(StateUnused)
}

func (r *Report) filter(state State) []Classification {
	var out []Classification
	for _, c := range r.Results {
		if c.State == state {
			out = append(out, c)
		}
	}
	return out
}
