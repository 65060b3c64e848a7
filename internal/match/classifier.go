package match

import (
	"github.com/ppiankov/msgsweep/internal/corpus"
	"github.com/ppiankov/msgsweep/internal/model"
)

// Classifier produces the final verdict for one identifier: the static
// matcher first, the dynamic matcher only on a static miss. Each verdict
// depends only on the immutable corpus, so classifications are independent
// across identifiers.
type Classifier struct {
	static  *Static
	dynamic *Dynamic
}

// NewClassifier creates a classifier with the given matchers
func NewClassifier(static *Static, dynamic *Dynamic) *Classifier {
	return &Classifier{
		static:  static,
		dynamic: dynamic,
	}
}

// Classify returns exactly one state for id: used, dynamic (with the first
// confirmed location), or unused.
func (c *Classifier) Classify(id string, corp *corpus.Corpus) model.Classification {
	if c.static.Match(id, corp) {
		return model.Classification{ID: id, State: model.StateUsed}
	}

	if loc, ok := c.dynamic.Find(id, corp); ok {
		return model.Classification{ID: id, State: model.StateDynamic, Location: &loc}
	}

	return model.Classification{ID: id, State: model.StateUnused}
}
