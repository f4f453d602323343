package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeStranger-Fred/banditlab/experiment"
)

func TestSweepConfigBuildsOnePolicyPerEpsilon(t *testing.T) {
	epsilons := []float64{1e-4, 0.01, 0.5}
	cfg := sweepConfig(epsilons, 10, 5000, 1, 1.0)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Policies, len(epsilons))
	for i, p := range cfg.Policies {
		assert.Equal(t, experiment.PolicyEpsilonGreedy, p.Type)
		assert.Equal(t, epsilons[i], p.Epsilon)
		assert.Equal(t, 1.0, p.Init)
	}
}

func TestSweepConfigRejectsBadEpsilon(t *testing.T) {
	cfg := sweepConfig([]float64{2.0}, 10, 100, 1, 1.0)
	require.Error(t, cfg.Validate())
}
