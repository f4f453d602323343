package bandit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// UCB ranks arms by their reward estimate plus an optimism bonus that grows
// slowly with the total step count and shrinks with each pull of the arm.
type UCB struct {
	env       *BernoulliBandit
	coef      float64
	total     int
	estimates []float64
}

func NewUCB(env *BernoulliBandit, coef, init float64) *UCB {
	estimates := make([]float64, env.K())
	for i := range estimates {
		estimates[i] = init
	}
	return &UCB{
		env:       env,
		coef:      coef,
		estimates: estimates,
	}
}

// upperConfidenceBound is est + coef * sqrt(ln(total) / (2*(pulls+1))).
func upperConfidenceBound(est, coef float64, total, pulls int) float64 {
	return est + coef*math.Sqrt(math.Log(float64(total))/(2*float64(pulls+1)))
}

func (p *UCB) Name() string {
	return fmt.Sprintf("ucb-%g", p.coef)
}

func (p *UCB) RunOneStep(pulls []int) int {
	p.total++
	bounds := make([]float64, len(p.estimates))
	for i, est := range p.estimates {
		bounds[i] = upperConfidenceBound(est, p.coef, p.total, pulls[i])
	}
	k := floats.MaxIdx(bounds)
	r := p.env.Step(k)
	updateEstimate(p.estimates, k, r, pulls[k])
	return k
}
