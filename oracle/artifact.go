package oracle

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/sumgo/blobstore"
	"github.com/hupe1980/sumgo/codec"
	"github.com/hupe1980/sumgo/oracle/tfidf"
)

// VectorizerArtifact is the exported form of a fitted TF-IDF
// vectorizer: the term vocabulary and per-term IDF weights.
type VectorizerArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float32      `json:"idf"`
}

// ModelArtifact is the exported form of a trained linear classifier.
// Kind is "probability" or "decision".
type ModelArtifact struct {
	Kind    string    `json:"kind"`
	Weights []float32 `json:"weights"`
	Bias    float32   `json:"bias"`
}

// LoadVectorizer loads a fitted TF-IDF vectorizer artifact from store.
//
// Artifacts ending in ".zst" or ".lz4" are decompressed transparently.
// A missing artifact wraps both blobstore.ErrNotFound and
// ErrUnavailable: the capability is simply not deployed.
func LoadVectorizer(ctx context.Context, store blobstore.BlobStore, name string, c codec.Codec) (*tfidf.Vectorizer, error) {
	var artifact VectorizerArtifact
	if err := loadArtifact(ctx, store, name, c, &artifact); err != nil {
		return nil, err
	}

	v, err := tfidf.New(artifact.Vocabulary, artifact.IDF)
	if err != nil {
		return nil, fmt.Errorf("oracle: invalid vectorizer artifact %q: %w", name, err)
	}
	return v, nil
}

// LoadLinearModel loads a trained linear classifier artifact from store.
func LoadLinearModel(ctx context.Context, store blobstore.BlobStore, name string, c codec.Codec) (*LinearModel, error) {
	var artifact ModelArtifact
	if err := loadArtifact(ctx, store, name, c, &artifact); err != nil {
		return nil, err
	}

	var kind ScoreKind
	switch artifact.Kind {
	case "probability":
		kind = KindProbability
	case "decision":
		kind = KindDecision
	default:
		return nil, fmt.Errorf("oracle: invalid model artifact %q: unknown kind %q", name, artifact.Kind)
	}

	m, err := NewLinearModel(artifact.Weights, artifact.Bias, kind)
	if err != nil {
		return nil, fmt.Errorf("oracle: invalid model artifact %q: %w", name, err)
	}
	return m, nil
}

func loadArtifact(ctx context.Context, store blobstore.BlobStore, name string, c codec.Codec, v any) error {
	if c == nil {
		c = codec.Default
	}

	r, err := store.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: artifact %q: %w", ErrUnavailable, name, err)
	}
	defer r.Close()

	data, err := readDecompressed(r, name)
	if err != nil {
		return fmt.Errorf("oracle: read artifact %q: %w", name, err)
	}

	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("oracle: decode artifact %q with codec %s: %w", name, c.Name(), err)
	}
	return nil
}

func readDecompressed(r io.Reader, name string) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	case strings.HasSuffix(name, ".lz4"):
		return io.ReadAll(lz4.NewReader(r))
	default:
		return io.ReadAll(r)
	}
}
