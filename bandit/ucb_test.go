package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperConfidenceBoundShrinksWithPulls(t *testing.T) {
	prev := upperConfidenceBound(0.5, 1.0, 10, 0)
	for pulls := 1; pulls <= 20; pulls++ {
		bound := upperConfidenceBound(0.5, 1.0, 10, pulls)
		assert.Less(t, bound, prev, "pulls=%d", pulls)
		prev = bound
	}
}

func TestUpperConfidenceBoundGrowsWithTotalSteps(t *testing.T) {
	assert.Greater(t,
		upperConfidenceBound(0.5, 1.0, 100, 3),
		upperConfidenceBound(0.5, 1.0, 10, 3))
}

func TestUCBPrefersLessPulledArmOnEqualEstimates(t *testing.T) {
	env := newTestBandit([]float64{0, 0}, 1)
	policy := NewUCB(env, 1.0, 1.0)
	policy.estimates = []float64{0.5, 0.5}
	policy.total = 5 // past step one, so ln(total) > 0 and the bonus matters

	k := policy.RunOneStep([]int{5, 0})
	require.Equal(t, 1, k)
}

func TestUCBTieBreaksLowestIndex(t *testing.T) {
	env := newTestBandit([]float64{0, 0, 0}, 1)
	policy := NewUCB(env, 1.0, 1.0)
	policy.estimates = []float64{0.5, 0.5, 0.5}

	k := policy.RunOneStep([]int{0, 0, 0})
	require.Equal(t, 0, k)
}

func TestUCBUsesNoRandomness(t *testing.T) {
	run := func() []int {
		env := newTestBandit([]float64{0, 1, 0}, 11)
		policy := NewUCB(env, 1.0, 1.0)
		solver := NewSolver(env, policy)
		require.NoError(t, solver.Run(300))
		return solver.Actions()
	}
	assert.Equal(t, run(), run())
}
