package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/sumgo/sentence"
)

// Adapter wires a Vectorizer and a Scorer into the scoring stage of
// the pipeline. It is safe for concurrent use once constructed.
type Adapter struct {
	vectorizer Vectorizer
	scorer     Scorer
}

// NewAdapter creates an Adapter. Either capability may be nil, in
// which case Score reports ErrUnavailable; this is the documented
// "not loaded" state for deployments where artifacts are absent.
func NewAdapter(vectorizer Vectorizer, scorer Scorer) *Adapter {
	return &Adapter{vectorizer: vectorizer, scorer: scorer}
}

// Ready reports whether both capabilities are loaded.
func (a *Adapter) Ready() bool {
	return a != nil && a.vectorizer != nil && a.scorer != nil
}

// Score produces one Candidate per input sentence, in input order.
//
// Raw scores are normalized to [0,1]: probability scorers pass
// through, decision scorers are min-max rescaled over the batch. A
// batch whose raw scores are all equal rescales to all 1.0 rather
// than dividing by zero.
func (a *Adapter) Score(ctx context.Context, sents []sentence.Sentence) ([]Candidate, error) {
	if !a.Ready() {
		return nil, ErrUnavailable
	}
	if len(sents) == 0 {
		return nil, nil
	}

	texts := make([]string, len(sents))
	for i, s := range sents {
		texts[i] = s.Text
	}

	vectors, err := a.vectorizer.VectorizeSentences(ctx, texts)
	if err != nil {
		return nil, scoringFault("vectorize", err)
	}
	if len(vectors) != len(sents) {
		return nil, fmt.Errorf("%w: vectorizer returned %d vectors for %d sentences", ErrUnavailable, len(vectors), len(sents))
	}

	dim := a.vectorizer.Dimension()
	for _, v := range vectors {
		if len(v) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
	}

	scores, err := a.scorer.ScoreFeatures(ctx, vectors)
	if err != nil {
		return nil, scoringFault("score", err)
	}
	if len(scores) != len(sents) {
		return nil, fmt.Errorf("%w: scorer returned %d scores for %d sentences", ErrUnavailable, len(scores), len(sents))
	}

	if a.scorer.Kind() == KindDecision {
		rescale(scores)
	}

	candidates := make([]Candidate, len(sents))
	for i := range sents {
		candidates[i] = Candidate{
			Sentence: sents[i],
			Vector:   vectors[i],
			Score:    scores[i],
		}
	}
	return candidates, nil
}

// rescale maps raw decision scores onto [0,1] via (x-min)/(max-min).
// A degenerate batch (all scores equal) maps to all 1.0; this is the
// defined fallback, not an error.
func rescale(scores []float64) {
	min, max := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	if max == min {
		for i := range scores {
			scores[i] = 1.0
		}
		return
	}

	span := max - min
	for i := range scores {
		scores[i] = (scores[i] - min) / span
	}
}

// scoringFault wraps capability failures as ErrUnavailable, but keeps
// dimension mismatches typed so the pipeline boundary can report them
// as internal faults rather than a missing model.
func scoringFault(stage string, err error) error {
	var dm *ErrDimensionMismatch
	if errors.As(err, &dm) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, stage, err)
}
