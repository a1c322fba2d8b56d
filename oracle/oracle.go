// Package oracle adapts externally trained scoring artifacts into the
// (vector, score) pairs the selection core consumes.
//
// The classifier and vectorizer are opaque capabilities: a Vectorizer
// turns sentence text into fixed-width feature vectors, a Scorer turns
// feature vectors into importance scores. The Adapter normalizes the
// two scorer shapes (probability output vs. unbounded decision score)
// onto a common [0,1] scale. Loaded capabilities are read-only and
// safe for concurrent use by simultaneous summarization requests.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/sumgo/sentence"
)

// ErrUnavailable is returned when the scoring or vectorization
// capability is missing or fails during inference. Callers surface a
// friendly diagnostic and skip selection; this error never reaches an
// end user as a raw fault.
var ErrUnavailable = errors.New("scoring capability unavailable")

// ErrDimensionMismatch indicates inconsistent feature vector widths
// within a batch, or a vector that does not match the model dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ScoreKind describes the shape of a Scorer's raw output.
type ScoreKind int

const (
	// KindProbability scorers emit scores already in [0,1]; they pass
	// through unchanged.
	KindProbability ScoreKind = iota
	// KindDecision scorers emit unbounded real-valued scores that the
	// Adapter min-max rescales per batch.
	KindDecision
)

func (k ScoreKind) String() string {
	switch k {
	case KindProbability:
		return "probability"
	case KindDecision:
		return "decision"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Vectorizer produces one feature vector per sentence. Vectors must be
// dimensionally consistent across a batch; they are used purely for
// relative similarity comparison, never across batches.
type Vectorizer interface {
	VectorizeSentences(ctx context.Context, sents []string) ([][]float32, error)
	Dimension() int
}

// Scorer produces one raw importance score per feature vector.
type Scorer interface {
	ScoreFeatures(ctx context.Context, features [][]float32) ([]float64, error)
	Kind() ScoreKind
}

// Candidate pairs a filtered sentence with its importance score and
// feature vector. Candidates exist only during the scoring+selection
// phase of one request.
type Candidate struct {
	Sentence sentence.Sentence
	Vector   []float32
	// Score is the normalized importance score in [0,1].
	Score float64
}
