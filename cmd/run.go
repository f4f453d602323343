package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/banditlab/experiment"
)

var (
	runConfigPath string
	runArms       int
	runSteps      int
	runSeed       uint64
	runOut        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured experiment",
	Long: `Run one bandit experiment: a single Bernoulli bandit shared by one
solver per configured policy. Without --config the classic 10-armed testbed
runs with all four policies for 5000 steps.

Examples:
  banditlab run
  banditlab run --config experiment.yaml --out regret.html
  banditlab run --arms 20 --steps 10000 --seed 7`,
	RunE: runExperiment,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "YAML experiment config")
	runCmd.Flags().IntVar(&runArms, "arms", 0, "override the number of arms")
	runCmd.Flags().IntVar(&runSteps, "steps", 0, "override the number of steps")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "override the random seed")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "write a regret chart to this HTML file")
	rootCmd.AddCommand(runCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg := experiment.Default()
	if runConfigPath != "" {
		loaded, err := experiment.Load(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("arms") {
		cfg.Arms = runArms
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = runSteps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}

	slog.Info("running experiment",
		"arms", cfg.Arms,
		"steps", cfg.Steps,
		"seed", cfg.Seed,
		"policies", len(cfg.Policies))

	report, err := experiment.Run(cfg)
	if err != nil {
		return err
	}
	experiment.PrintSummary(os.Stdout, report)

	if runOut != "" {
		if err := experiment.RenderRegretChart(report, runOut); err != nil {
			return err
		}
		slog.Info("wrote regret chart", "path", runOut)
	}
	return nil
}
