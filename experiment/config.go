// Package experiment wires bandit environments, solvers and reporting
// together from a declarative configuration.
package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy type names accepted in configuration.
const (
	PolicyEpsilonGreedy         = "epsilon-greedy"
	PolicyDecayingEpsilonGreedy = "decaying-epsilon-greedy"
	PolicyUCB                   = "ucb"
	PolicyThompsonSampling      = "thompson-sampling"
)

// PolicyConfig selects one policy and its hyperparameters. Fields that a
// policy does not use are ignored for it.
type PolicyConfig struct {
	Type    string  `yaml:"type"`
	Epsilon float64 `yaml:"epsilon"` // epsilon-greedy only
	Coef    float64 `yaml:"coef"`    // ucb only
	Init    float64 `yaml:"init"`    // initial reward estimate
}

// UnmarshalYAML fills in the hyperparameter defaults (optimistic 1.0 init,
// unit exploration coefficient) before decoding, so configs only name what
// they change.
func (p *PolicyConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain PolicyConfig
	out := plain{Init: 1.0, Coef: 1.0}
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = PolicyConfig(out)
	return nil
}

// Config describes one experiment: a single bandit shared by one solver per
// configured policy.
type Config struct {
	Seed     uint64         `yaml:"seed"`
	Arms     int            `yaml:"arms"`
	Steps    int            `yaml:"steps"`
	Policies []PolicyConfig `yaml:"policies"`
}

// Default is the classic 10-armed testbed: 5000 steps, seed 1, all four
// policies with their textbook hyperparameters.
func Default() Config {
	return Config{
		Seed:  1,
		Arms:  10,
		Steps: 5000,
		Policies: []PolicyConfig{
			{Type: PolicyEpsilonGreedy, Epsilon: 0.01, Init: 1.0},
			{Type: PolicyDecayingEpsilonGreedy, Init: 1.0},
			{Type: PolicyUCB, Coef: 1.0, Init: 1.0},
			{Type: PolicyThompsonSampling},
		},
	}
}

// Load reads a YAML config from path. Fields absent from the file keep
// their Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Arms <= 0 {
		return fmt.Errorf("experiment: arms must be positive, got %d", c.Arms)
	}
	if c.Steps < 0 {
		return fmt.Errorf("experiment: steps must not be negative, got %d", c.Steps)
	}
	if len(c.Policies) == 0 {
		return fmt.Errorf("experiment: at least one policy is required")
	}
	for i, p := range c.Policies {
		switch p.Type {
		case PolicyEpsilonGreedy:
			if p.Epsilon < 0 || p.Epsilon > 1 {
				return fmt.Errorf("experiment: policy %d: epsilon %g outside [0,1]", i, p.Epsilon)
			}
		case PolicyUCB:
			if p.Coef < 0 {
				return fmt.Errorf("experiment: policy %d: coef must not be negative, got %g", i, p.Coef)
			}
		case PolicyDecayingEpsilonGreedy, PolicyThompsonSampling:
		default:
			return fmt.Errorf("experiment: policy %d: unknown type %q", i, p.Type)
		}
	}
	return nil
}
