// Package sumgo selects a representative, non-redundant subset of
// sentences from a document to serve as an executive summary.
//
// The pipeline is: normalize raw text into candidate sentences, filter
// out fragments, score each candidate with a pre-trained oracle
// (classifier + TF-IDF vectorizer), greedily select up to k sentences
// with a cosine-similarity redundancy cutoff, and restore the accepted
// subset to document order. Surrounding functionality (file upload,
// PDF/OCR extraction, rendering) lives in external collaborators that
// feed text in and receive sentence lists out.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	store := blobstore.NewLocalStore("./models")
//	vectorizer, err := oracle.LoadVectorizer(ctx, store, "tfidf.json", nil)
//	if err != nil { ... }
//	model, err := oracle.LoadLinearModel(ctx, store, "model.json", nil)
//	if err != nil { ... }
//
//	s, err := sumgo.New(oracle.NewAdapter(vectorizer, model))
//	if err != nil { ... }
//
//	result, err := s.Summarize(documentText).
//	    K(5).
//	    Categorize().
//	    Execute(ctx)
//
// A request-level summary shorter than k is a normal outcome when the
// document's top sentences are mutually redundant; it is never padded
// with near-duplicate filler.
package sumgo

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/sumgo/category"
	"github.com/hupe1980/sumgo/oracle"
	"github.com/hupe1980/sumgo/selector"
	"github.com/hupe1980/sumgo/sentence"
)

// Preset summary sizes. An explicit K overrides presets.
const (
	ShortLength  = 3
	MediumLength = 7
	LongLength   = 12

	// MaxK bounds the requested summary size.
	MaxK = 30
)

// ClampK bounds a requested summary size to [1, MaxK].
func ClampK(k int) int {
	if k < 1 {
		return 1
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

// Summarizer is the summarization pipeline. It is safe for concurrent
// use: the oracle is read-only after construction and every request
// owns its own selection state.
type Summarizer struct {
	splitter            *sentence.Splitter
	oracle              *oracle.Adapter
	categorizer         *category.Categorizer
	metrics             MetricsCollector
	logger              *Logger
	redundancyThreshold float64
	minSentenceLength   int
	minDocumentLength   int
}

// New creates a Summarizer around the given scoring oracle. The oracle
// may be in its "not loaded" state (nil capabilities); requests will
// then fail with ErrScoringUnavailable instead of crashing.
func New(o *oracle.Adapter, optFns ...Option) (*Summarizer, error) {
	opts := applyOptions(optFns)

	if opts.redundancyThreshold < 0 || opts.redundancyThreshold > 1 {
		return nil, ErrInvalidThreshold
	}

	splitter, err := sentence.NewSplitter()
	if err != nil {
		return nil, translateError(err)
	}

	return &Summarizer{
		splitter:            splitter,
		oracle:              o,
		categorizer:         opts.categorizer,
		metrics:             opts.metricsCollector,
		logger:              opts.logger,
		redundancyThreshold: opts.redundancyThreshold,
		minSentenceLength:   opts.minSentenceLength,
		minDocumentLength:   opts.minDocumentLength,
	}, nil
}

// Result is the outcome of one summarization request.
type Result struct {
	// Sentences is the selected summary in original document order.
	// Empty with a Diagnostic set for expected degenerate outcomes.
	Sentences []string
	// Positions holds the original document position of each summary
	// sentence, ascending, aligned with Sentences.
	Positions []int
	// Sections groups the summary by topic. Nil unless the request
	// asked for categorization.
	Sections []category.Section
	// Diagnostic is the single human-readable message the
	// presentation layer may show when the summary is empty.
	Diagnostic string
}

// Text joins the summary sentences into one paragraph.
func (r *Result) Text() string {
	return strings.Join(r.Sentences, " ")
}

// Summarize creates a fluent request builder for the given document
// text.
//
// Example:
//
//	result, err := s.Summarize(text).
//	    K(5).
//	    RedundancyThreshold(0.7).
//	    Execute(ctx)
func (s *Summarizer) Summarize(text string) *SummarizeBuilder {
	return &SummarizeBuilder{
		s:         s,
		text:      text,
		k:         MediumLength,
		threshold: s.redundancyThreshold,
	}
}

// SummarizeBuilder is a fluent builder for one summarization request.
type SummarizeBuilder struct {
	s          *Summarizer
	text       string
	k          int
	threshold  float64
	categorize bool
}

// K sets the exact number of summary sentences, clamped to [1, MaxK].
func (sb *SummarizeBuilder) K(k int) *SummarizeBuilder {
	sb.k = ClampK(k)
	return sb
}

// Short requests a 3-sentence summary.
func (sb *SummarizeBuilder) Short() *SummarizeBuilder { return sb.K(ShortLength) }

// Medium requests a 7-sentence summary (the default).
func (sb *SummarizeBuilder) Medium() *SummarizeBuilder { return sb.K(MediumLength) }

// Long requests a 12-sentence summary.
func (sb *SummarizeBuilder) Long() *SummarizeBuilder { return sb.K(LongLength) }

// RedundancyThreshold overrides the configured similarity cutoff for
// this request. Values outside [0,1] are ignored.
func (sb *SummarizeBuilder) RedundancyThreshold(threshold float64) *SummarizeBuilder {
	if threshold >= 0 && threshold <= 1 {
		sb.threshold = threshold
	}
	return sb
}

// Categorize requests sectioned output in addition to the flat
// sentence list.
func (sb *SummarizeBuilder) Categorize() *SummarizeBuilder {
	sb.categorize = true
	return sb
}

// Execute runs the pipeline. The returned Result is always non-nil;
// on expected degenerate outcomes (insufficient text, no valid
// candidates, model unavailable) it carries a friendly Diagnostic and
// the error matches the corresponding sentinel.
func (sb *SummarizeBuilder) Execute(ctx context.Context) (*Result, error) {
	start := time.Now()

	result, err := sb.s.run(ctx, sb.text, sb.k, sb.threshold, sb.categorize)

	sb.s.metrics.RecordSummarize(sb.k, time.Since(start), err)
	sb.s.logger.LogSummarize(ctx, sb.k, len(result.Sentences), err)

	return result, err
}

// MustExecute runs the request, panicking on error.
// Use this only in tests or when you're certain the input is valid.
func (sb *SummarizeBuilder) MustExecute(ctx context.Context) *Result {
	result, err := sb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return result
}

// run is the synchronous batch pipeline for one document.
func (s *Summarizer) run(ctx context.Context, text string, k int, threshold float64, categorize bool) (*Result, error) {
	if len(strings.TrimSpace(text)) < s.minDocumentLength {
		return &Result{Diagnostic: Diagnostic(ErrInsufficientText)}, ErrInsufficientText
	}

	valid := sentence.Filter(s.splitter.Split(text), s.minSentenceLength)
	if len(valid) == 0 {
		return &Result{Diagnostic: Diagnostic(ErrNoValidCandidates)}, ErrNoValidCandidates
	}

	scored, err := s.oracle.Score(ctx, valid)
	if err != nil {
		err = translateError(err)
		return &Result{Diagnostic: Diagnostic(err)}, err
	}

	cands := make([]selector.Candidate, len(scored))
	for i, c := range scored {
		cands[i] = selector.Candidate{
			Position: c.Sentence.Position,
			Score:    c.Score,
			Vector:   c.Vector,
		}
	}

	sel := selector.Select(cands, k, threshold)
	s.logger.LogSelection(ctx, len(cands), sel.Size(), threshold)
	s.metrics.RecordSelection(len(cands), sel.Size())

	result := &Result{
		Sentences: make([]string, 0, sel.Size()),
		Positions: make([]int, 0, sel.Size()),
	}
	for _, i := range sel.InDocumentOrder() {
		result.Sentences = append(result.Sentences, scored[i].Sentence.Text)
		result.Positions = append(result.Positions, scored[i].Sentence.Position)
	}

	if categorize {
		result.Sections = s.categorizer.Bucket(result.Sentences)
	}

	return result, nil
}
