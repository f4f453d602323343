package bandit

import (
	"fmt"
	"math/rand/v2"
)

// BernoulliBandit is a K-armed slot machine. Each arm pays out 1 with a
// fixed success probability drawn uniformly at construction, and 0 otherwise.
// The probabilities stay hidden from the policies; only the solver's regret
// accounting reads them.
type BernoulliBandit struct {
	rng      *rand.Rand
	probs    []float64
	bestArm  int
	bestProb float64
}

// NewBernoulliBandit draws k success probabilities from rng. Ties for the
// best arm resolve to the lowest index.
func NewBernoulliBandit(k int, rng *rand.Rand) (*BernoulliBandit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("bandit: arm count must be positive, got %d", k)
	}
	probs := make([]float64, k)
	best := 0
	for i := range probs {
		probs[i] = rng.Float64()
		if probs[i] > probs[best] {
			best = i
		}
	}
	return &BernoulliBandit{
		rng:      rng,
		probs:    probs,
		bestArm:  best,
		bestProb: probs[best],
	}, nil
}

// Step pulls arm k and returns the binary reward. The index must be in
// [0, K); anything else is a caller bug and panics.
func (b *BernoulliBandit) Step(k int) float64 {
	if b.rng.Float64() < b.probs[k] {
		return 1
	}
	return 0
}

func (b *BernoulliBandit) K() int { return len(b.probs) }

// BestArm is the index of the arm with the highest success probability.
func (b *BernoulliBandit) BestArm() int { return b.bestArm }

// BestProb is the success probability of the best arm.
func (b *BernoulliBandit) BestProb() float64 { return b.bestProb }
