package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/sumgo/distance"
)

// LinearModel is a pre-trained linear sentence classifier.
//
// Probability-kind models emit the sigmoid of the linear score
// (the positive-class probability of a logistic regression); decision-
// kind models emit the raw signed distance to the decision boundary,
// which the Adapter rescales per batch.
//
// A LinearModel is immutable after construction.
type LinearModel struct {
	weights []float32
	bias    float32
	kind    ScoreKind
}

// NewLinearModel creates a LinearModel from fitted weights.
func NewLinearModel(weights []float32, bias float32, kind ScoreKind) (*LinearModel, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("oracle: linear model has no weights")
	}
	if kind != KindProbability && kind != KindDecision {
		return nil, fmt.Errorf("oracle: unsupported score kind: %v", kind)
	}
	return &LinearModel{weights: weights, bias: bias, kind: kind}, nil
}

// Dimension returns the feature width the model was trained on.
func (m *LinearModel) Dimension() int { return len(m.weights) }

// Kind returns the shape of the model's raw output.
func (m *LinearModel) Kind() ScoreKind { return m.kind }

// ScoreFeatures scores a batch of feature vectors.
func (m *LinearModel) ScoreFeatures(_ context.Context, features [][]float32) ([]float64, error) {
	scores := make([]float64, len(features))
	for i, f := range features {
		if len(f) != len(m.weights) {
			return nil, &ErrDimensionMismatch{Expected: len(m.weights), Actual: len(f)}
		}

		raw := float64(distance.Dot(m.weights, f) + m.bias)
		if m.kind == KindProbability {
			raw = sigmoid(raw)
		}
		scores[i] = raw
	}
	return scores, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
