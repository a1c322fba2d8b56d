// Package testutil provides deterministic helpers for tests and
// benchmarks: a seeded thread-safe RNG and random feature vector
// generation.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/sumgo/distance"
)

// RNG is a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Scores returns n pseudo-random importance scores in [0,1).
func (r *RNG) Scores(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = r.rand.Float64()
	}
	return scores
}

// GaussianVectors generates random vectors with values from a standard
// normal distribution. Uses a single backing array.
func (r *RNG) GaussianVectors(num, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = float32(r.rand.NormFloat64())
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the
// hypersphere). Gaussian sampling keeps the directions uniform.
func (r *RNG) UnitVectors(num, dimensions int) [][]float32 {
	vectors := r.GaussianVectors(num, dimensions)
	for _, vec := range vectors {
		distance.NormalizeL2InPlace(vec)
	}
	return vectors
}

// UnitVector generates a single L2-normalized random vector.
func (r *RNG) UnitVector(dimensions int) []float32 {
	return r.UnitVectors(1, dimensions)[0]
}

// NearDuplicate returns a unit vector at approximately the given
// cosine similarity to vec. vec must itself be unit length.
func (r *RNG) NearDuplicate(vec []float32, cosine float64) []float32 {
	ortho := r.UnitVector(len(vec))

	// Remove the component along vec, renormalize the remainder.
	dot := distance.Dot(vec, ortho)
	for i := range ortho {
		ortho[i] -= dot * vec[i]
	}
	distance.NormalizeL2InPlace(ortho)

	out := make([]float32, len(vec))
	sin := float32(math.Sqrt(1 - cosine*cosine))
	cos := float32(cosine)
	for i := range out {
		out[i] = cos*vec[i] + sin*ortho[i]
	}
	return out
}
