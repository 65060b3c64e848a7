package worker

import (
	"context"

	"github.com/ppiankov/msgsweep/internal/corpus"
	"github.com/ppiankov/msgsweep/internal/match"
	"github.com/ppiankov/msgsweep/internal/model"
)

// ClassifyJob classifies one catalog identifier against the corpus
type ClassifyJob struct {
	Index      int // Position in catalog declaration order
	ID         string
	Corpus     *corpus.Corpus
	Classifier *match.Classifier
}

// Execute executes the classification job
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	return &ClassifyResult{
		Index:          j.Index,
		Classification: j.Classifier.Classify(j.ID, j.Corpus),
	}
}

// ClassifyResult carries one verdict back to its catalog position
type ClassifyResult struct {
	Index          int
	Classification model.Classification
}

// GetError returns the error from the classification; matching cannot fail,
// so this is always nil and exists to satisfy the pool's Result contract.
func (r *ClassifyResult) GetError() error {
	return nil
}

// ClassifyAll classifies every identifier concurrently and returns the
// verdicts in catalog declaration order. Each identifier's verdict depends
// only on the immutable corpus, so concurrent evaluation is observably
// identical to sequential evaluation. The run always completes; there is no
// cancellation, so no caller context is taken.
func ClassifyAll(ids []string, corp *corpus.Corpus, classifier *match.Classifier, workers int) []model.Classification {
	out := make([]model.Classification, len(ids))
	if len(ids) == 0 {
		return out
	}

	pool := NewPool(workers, len(ids))
	pool.Start()

	for i, id := range ids {
		pool.Submit(&ClassifyJob{
			Index:      i,
			ID:         id,
			Corpus:     corp,
			Classifier: classifier,
		})
	}

	for _, result := range pool.Wait() {
		r := result.(*ClassifyResult)
		out[r.Index] = r.Classification
	}

	return out
}
