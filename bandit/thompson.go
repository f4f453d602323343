package bandit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ThompsonSampling keeps a Beta posterior per arm over its unknown success
// probability, starting from the uniform Beta(1,1) prior. Each step samples
// every posterior and pulls the arm with the highest draw, so arms are
// chosen in proportion to how likely they are to be the best one.
type ThompsonSampling struct {
	env    *BernoulliBandit
	src    rand.Source
	alphas []float64
	betas  []float64
}

func NewThompsonSampling(env *BernoulliBandit, src rand.Source) *ThompsonSampling {
	alphas := make([]float64, env.K())
	betas := make([]float64, env.K())
	for i := range alphas {
		alphas[i] = 1
		betas[i] = 1
	}
	return &ThompsonSampling{
		env:    env,
		src:    src,
		alphas: alphas,
		betas:  betas,
	}
}

func (p *ThompsonSampling) Name() string {
	return "thompson-sampling"
}

func (p *ThompsonSampling) RunOneStep(pulls []int) int {
	samples := make([]float64, len(p.alphas))
	for i := range samples {
		samples[i] = distuv.Beta{Alpha: p.alphas[i], Beta: p.betas[i], Src: p.src}.Rand()
	}
	k := floats.MaxIdx(samples)
	r := p.env.Step(k)
	p.alphas[k] += r
	p.betas[k] += 1 - r
	return k
}
