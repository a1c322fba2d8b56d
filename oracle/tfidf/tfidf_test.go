package tfidf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sumgo/distance"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "budget", "grew", "by", "12"}, Tokenize("The budget grew by 12%."))
	assert.Empty(t, Tokenize("! ? ."))
	assert.Empty(t, Tokenize("a b c")) // single-char tokens dropped
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	_, err = New(map[string]int{"a": 5}, []float32{1})
	assert.Error(t, err)
}

func TestFitAndVectorize(t *testing.T) {
	ctx := context.Background()

	v, err := Fit([]string{
		"the tax policy changed",
		"the tax rate changed",
		"unrelated housing report",
	})
	require.NoError(t, err)
	require.Greater(t, v.Dimension(), 0)

	vecs, err := v.VectorizeSentences(ctx, []string{
		"the tax policy changed",
		"the tax policy changed",
		"unrelated housing report",
	})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	for _, vec := range vecs {
		require.Len(t, vec, v.Dimension())
		assert.InDelta(t, 1.0, distance.Norm(vec), 1e-5)
	}

	// Identical sentences vectorize identically.
	assert.Equal(t, vecs[0], vecs[1])
	assert.InDelta(t, 1.0, distance.Cosine(vecs[0], vecs[1]), 1e-6)

	// Unrelated sentences share no terms.
	assert.InDelta(t, 0.0, distance.Cosine(vecs[0], vecs[2]), 1e-6)
}

func TestVectorizeNoVocabularyOverlap(t *testing.T) {
	v, err := New(map[string]int{"alpha": 0, "beta": 1}, []float32{1, 1})
	require.NoError(t, err)

	vecs, err := v.VectorizeSentences(context.Background(), []string{"gamma delta"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)

	// No overlap produces a zero vector, which the selector treats as
	// similar to nothing.
	assert.Equal(t, float32(0), distance.Norm(vecs[0]))
}

func TestVectorizeEmptyBatch(t *testing.T) {
	v, err := New(map[string]int{"alpha": 0}, []float32{1})
	require.NoError(t, err)

	vecs, err := v.VectorizeSentences(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}

func TestVectorizeCancelledContext(t *testing.T) {
	v, err := Fit([]string{"some corpus text here"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = v.VectorizeSentences(ctx, []string{"some corpus text here"})
	assert.ErrorIs(t, err, context.Canceled)
}
