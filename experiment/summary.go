package experiment

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// PrintSummary writes a colored console summary of a finished report: the
// environment facts, then one line per policy with its final regret and the
// arm it settled on. The favorite arm shows green when it matches the best
// arm and red otherwise.
func PrintSummary(w io.Writer, report *Report) {
	fmt.Fprintln(w, aurora.Bold(fmt.Sprintf("%d-armed Bernoulli bandit, %d steps", report.Arms, report.Steps)))
	fmt.Fprintf(w, "best arm %s with success probability %s\n",
		aurora.Green(fmt.Sprintf("%d", report.BestArm)),
		aurora.Green(fmt.Sprintf("%.4f", report.BestProb)))

	for _, result := range report.Results {
		favorite := mostPulledArm(result.Pulls)
		arm := aurora.Red(fmt.Sprintf("%d", favorite))
		if favorite == report.BestArm {
			arm = aurora.Green(fmt.Sprintf("%d", favorite))
		}
		fmt.Fprintf(w, "%-24s cumulative regret %s, favorite arm %s (%d pulls)\n",
			result.Name,
			aurora.Blue(fmt.Sprintf("%.2f", result.FinalRegret)),
			arm,
			result.Pulls[favorite])
	}
}

func mostPulledArm(pulls []int) int {
	best := 0
	for i, n := range pulls {
		if n > pulls[best] {
			best = i
		}
	}
	return best
}
