package bandit

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// EpsilonGreedy explores a uniformly random arm with probability epsilon and
// otherwise exploits the arm with the best sample-average reward estimate.
type EpsilonGreedy struct {
	env       *BernoulliBandit
	rng       *rand.Rand
	epsilon   float64
	estimates []float64
}

// NewEpsilonGreedy builds the policy with every reward estimate initialized
// to init. An optimistic init (the driver default is 1.0) forces each arm to
// be tried before the estimates settle.
func NewEpsilonGreedy(env *BernoulliBandit, epsilon, init float64, rng *rand.Rand) *EpsilonGreedy {
	estimates := make([]float64, env.K())
	for i := range estimates {
		estimates[i] = init
	}
	return &EpsilonGreedy{
		env:       env,
		rng:       rng,
		epsilon:   epsilon,
		estimates: estimates,
	}
}

func (p *EpsilonGreedy) Name() string {
	return fmt.Sprintf("e-greedy-%g", p.epsilon)
}

func (p *EpsilonGreedy) RunOneStep(pulls []int) int {
	var k int
	if p.rng.Float64() < p.epsilon {
		k = p.rng.IntN(p.env.K())
	} else {
		k = floats.MaxIdx(p.estimates)
	}
	r := p.env.Step(k)
	updateEstimate(p.estimates, k, r, pulls[k])
	return k
}

// DecayingEpsilonGreedy is EpsilonGreedy with the exploration probability
// shrinking as 1/t. The first step always explores.
type DecayingEpsilonGreedy struct {
	env       *BernoulliBandit
	rng       *rand.Rand
	total     int
	estimates []float64
}

func NewDecayingEpsilonGreedy(env *BernoulliBandit, init float64, rng *rand.Rand) *DecayingEpsilonGreedy {
	estimates := make([]float64, env.K())
	for i := range estimates {
		estimates[i] = init
	}
	return &DecayingEpsilonGreedy{
		env:       env,
		rng:       rng,
		estimates: estimates,
	}
}

func (p *DecayingEpsilonGreedy) Name() string {
	return "decaying-e-greedy"
}

func (p *DecayingEpsilonGreedy) RunOneStep(pulls []int) int {
	p.total++
	var k int
	if p.rng.Float64() < 1/float64(p.total) {
		k = p.rng.IntN(p.env.K())
	} else {
		k = floats.MaxIdx(p.estimates)
	}
	r := p.env.Step(k)
	updateEstimate(p.estimates, k, r, pulls[k])
	return k
}
