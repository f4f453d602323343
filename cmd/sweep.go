package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/banditlab/experiment"
)

var (
	sweepEpsilons []float64
	sweepArms     int
	sweepSteps    int
	sweepSeed     uint64
	sweepInit     float64
	sweepOut      string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep epsilon-greedy over a list of epsilons",
	Long: `Run one epsilon-greedy solver per epsilon value against the same
bandit and compare their regret curves.

Examples:
  banditlab sweep
  banditlab sweep --epsilons 0.0001,0.01,0.1,0.25,0.5 --out sweep.html`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Float64SliceVar(&sweepEpsilons, "epsilons", []float64{1e-4, 0.01, 0.1, 0.25, 0.5}, "epsilon values to compare")
	sweepCmd.Flags().IntVar(&sweepArms, "arms", 10, "number of arms")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5000, "number of steps per solver")
	sweepCmd.Flags().Uint64Var(&sweepSeed, "seed", 0, "random seed")
	sweepCmd.Flags().Float64Var(&sweepInit, "init", 1.0, "initial reward estimate")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "write a regret chart to this HTML file")
	rootCmd.AddCommand(sweepCmd)
}

// sweepConfig builds a config with one epsilon-greedy policy per epsilon.
func sweepConfig(epsilons []float64, arms, steps int, seed uint64, init float64) experiment.Config {
	cfg := experiment.Config{
		Seed:  seed,
		Arms:  arms,
		Steps: steps,
	}
	for _, epsilon := range epsilons {
		cfg.Policies = append(cfg.Policies, experiment.PolicyConfig{
			Type:    experiment.PolicyEpsilonGreedy,
			Epsilon: epsilon,
			Init:    init,
		})
	}
	return cfg
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := sweepConfig(sweepEpsilons, sweepArms, sweepSteps, sweepSeed, sweepInit)

	slog.Info("running epsilon sweep",
		"arms", cfg.Arms,
		"steps", cfg.Steps,
		"seed", cfg.Seed,
		"epsilons", sweepEpsilons)

	report, err := experiment.Run(cfg)
	if err != nil {
		return err
	}
	experiment.PrintSummary(os.Stdout, report)

	if sweepOut != "" {
		if err := experiment.RenderRegretChart(report, sweepOut); err != nil {
			return err
		}
		slog.Info("wrote regret chart", "path", sweepOut)
	}
	return nil
}
