package bandit

import "fmt"

// Solver drives repeated interaction between one policy and one bandit. It
// owns the bookkeeping every policy shares: per-arm pull counts, cumulative
// regret, and the chronological action/regret histories the reporting layer
// reads after a run.
type Solver struct {
	env    *BernoulliBandit
	policy Policy

	pulls     []int
	cumRegret float64
	actions   []int
	regrets   []float64
}

func NewSolver(env *BernoulliBandit, policy Policy) *Solver {
	return &Solver{
		env:    env,
		policy: policy,
		pulls:  make([]int, env.K()),
	}
}

// Run executes numSteps sequential steps. Negative counts are rejected
// before any state changes; zero is a valid no-op.
func (s *Solver) Run(numSteps int) error {
	if numSteps < 0 {
		return fmt.Errorf("bandit: step count must not be negative, got %d", numSteps)
	}
	for i := 0; i < numSteps; i++ {
		k := s.policy.RunOneStep(s.pulls)
		s.pulls[k]++
		s.actions = append(s.actions, k)
		s.updateRegret(k)
	}
	return nil
}

// updateRegret adds the gap between the best arm and the chosen arm to the
// running total. The gap is never negative, so the regret history is
// non-decreasing.
func (s *Solver) updateRegret(k int) {
	s.cumRegret += s.env.bestProb - s.env.probs[k]
	s.regrets = append(s.regrets, s.cumRegret)
}

// Actions returns the arms pulled so far in order. Callers must not modify
// the returned slice.
func (s *Solver) Actions() []int { return s.actions }

// Regrets returns the cumulative regret after each step, parallel to
// Actions. Callers must not modify the returned slice.
func (s *Solver) Regrets() []float64 { return s.regrets }

// PullCounts returns the number of times each arm was pulled. Callers must
// not modify the returned slice.
func (s *Solver) PullCounts() []int { return s.pulls }

func (s *Solver) CumulativeRegret() float64 { return s.cumRegret }

func (s *Solver) PolicyName() string { return s.policy.Name() }
