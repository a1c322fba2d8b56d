// Package tfidf implements a fitted TF-IDF sentence vectorizer.
//
// A Vectorizer is the Go-side counterpart of a vectorizer fitted by an
// external training pipeline: it carries a fixed vocabulary and
// per-term IDF weights and transforms sentences into dense,
// L2-normalized float32 feature vectors of a fixed dimension. Vectors
// are only meaningful for relative similarity comparison within one
// batch, never across differently fitted vectorizers.
package tfidf

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sumgo/distance"
)

// Two or more word characters, matching the tokenization the training
// pipeline uses to build the vocabulary.
var tokenRE = regexp.MustCompile(`[a-zA-Z0-9]{2,}`)

// Vectorizer transforms sentences into fixed-width TF-IDF vectors.
// It is immutable after construction and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float32
}

// New creates a Vectorizer from a fitted vocabulary and IDF weights.
// vocabulary maps each term to its vector component index; idf holds
// one weight per component.
func New(vocabulary map[string]int, idf []float32) (*Vectorizer, error) {
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("tfidf: empty vocabulary")
	}
	for term, i := range vocabulary {
		if i < 0 || i >= len(idf) {
			return nil, fmt.Errorf("tfidf: term %q index %d out of range for %d idf weights", term, i, len(idf))
		}
	}
	return &Vectorizer{vocabulary: vocabulary, idf: idf}, nil
}

// Fit builds a Vectorizer from a document corpus using smoothed IDF
// weights. Training the importance classifier happens elsewhere; Fit
// exists so tests and examples can construct a working vectorizer
// without external artifacts.
func Fit(corpus []string) (*Vectorizer, error) {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("tfidf: corpus produced no terms")
	}

	vocabulary := make(map[string]int, len(df))
	idf := make([]float32, 0, len(df))
	n := float64(len(corpus))
	for term, count := range df {
		vocabulary[term] = len(idf)
		// Smoothed IDF: log((1+N)/(1+df)) + 1.
		idf = append(idf, float32(math.Log((1+n)/(1+float64(count)))+1))
	}

	return New(vocabulary, idf)
}

// Tokenize lowercases text and extracts word tokens.
func Tokenize(text string) []string {
	return tokenRE.FindAllString(strings.ToLower(text), -1)
}

// Dimension returns the width of produced vectors.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// VectorizeSentences transforms a batch of sentences into TF-IDF
// vectors, one per sentence in input order. Sentences are independent,
// so the batch is transformed in parallel.
func (v *Vectorizer) VectorizeSentences(ctx context.Context, sents []string) ([][]float32, error) {
	vectors := make([][]float32, len(sents))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range sents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vectors[i] = v.transform(s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

var countPool = sync.Pool{
	New: func() any { return make(map[int]float32) },
}

func (v *Vectorizer) transform(sent string) []float32 {
	counts := countPool.Get().(map[int]float32)
	defer func() {
		clear(counts)
		countPool.Put(counts)
	}()

	for _, term := range Tokenize(sent) {
		if i, ok := v.vocabulary[term]; ok {
			counts[i]++
		}
	}

	vec := make([]float32, len(v.idf))
	for i, tf := range counts {
		vec[i] = tf * v.idf[i]
	}

	// Normalized output makes downstream cosine comparisons a plain
	// dot product; zero vectors (no vocabulary overlap) stay zero.
	distance.NormalizeL2InPlace(vec)

	return vec
}
