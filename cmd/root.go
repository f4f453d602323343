// Package cmd provides the banditlab CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "banditlab",
	Short: "Multi-armed bandit testbed",
	Long: `Banditlab simulates the Bernoulli multi-armed bandit problem and
compares action-selection policies (epsilon-greedy, decaying epsilon-greedy,
UCB, Thompson sampling) by their cumulative regret.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
