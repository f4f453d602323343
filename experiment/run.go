package experiment

import (
	"fmt"
	"math/rand/v2"

	"github.com/CodeStranger-Fred/banditlab/bandit"
)

// Result is one solver's recorded history after a run.
type Result struct {
	Name        string
	Actions     []int
	Regrets     []float64
	Pulls       []int
	FinalRegret float64
}

// Report collects every solver's result plus the environment facts needed
// for labeling.
type Report struct {
	Arms     int
	Steps    int
	BestArm  int
	BestProb float64
	Results  []Result
}

// Run builds one bandit from cfg.Seed and one solver per configured policy,
// runs each solver for cfg.Steps, and returns the collected histories.
// Each policy draws from its own stream seeded off the ordinal, so adding or
// reordering policies never changes another policy's run.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env, err := bandit.NewBernoulliBandit(cfg.Arms, rand.New(rand.NewPCG(cfg.Seed, 0)))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Arms:     cfg.Arms,
		Steps:    cfg.Steps,
		BestArm:  env.BestArm(),
		BestProb: env.BestProb(),
	}
	for i, pc := range cfg.Policies {
		policy, err := buildPolicy(env, pc, cfg.Seed+1+uint64(i))
		if err != nil {
			return nil, err
		}
		solver := bandit.NewSolver(env, policy)
		if err := solver.Run(cfg.Steps); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, Result{
			Name:        policy.Name(),
			Actions:     solver.Actions(),
			Regrets:     solver.Regrets(),
			Pulls:       solver.PullCounts(),
			FinalRegret: solver.CumulativeRegret(),
		})
	}
	return report, nil
}

func buildPolicy(env *bandit.BernoulliBandit, pc PolicyConfig, seed uint64) (bandit.Policy, error) {
	src := rand.NewPCG(seed, 0)
	switch pc.Type {
	case PolicyEpsilonGreedy:
		return bandit.NewEpsilonGreedy(env, pc.Epsilon, pc.Init, rand.New(src)), nil
	case PolicyDecayingEpsilonGreedy:
		return bandit.NewDecayingEpsilonGreedy(env, pc.Init, rand.New(src)), nil
	case PolicyUCB:
		return bandit.NewUCB(env, pc.Coef, pc.Init), nil
	case PolicyThompsonSampling:
		return bandit.NewThompsonSampling(env, src), nil
	default:
		return nil, fmt.Errorf("experiment: unknown policy type %q", pc.Type)
	}
}
