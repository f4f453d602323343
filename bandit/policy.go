package bandit

// Policy decides which arm to pull next. RunOneStep must pull exactly one
// arm on the environment, fold the observed reward into the policy's own
// state, and return the chosen index. pulls is the solver's per-arm pull
// count so far and must not be modified; the solver increments it after
// RunOneStep returns, so estimate updates that divide by pulls[k]+1 see the
// count as it will be after this pull.
type Policy interface {
	Name() string

	RunOneStep(pulls []int) int
}

// updateEstimate applies the incremental sample-average update
// est += (r - est) / n, where n counts this pull.
func updateEstimate(estimates []float64, k int, reward float64, pullsBefore int) {
	estimates[k] += (reward - estimates[k]) / float64(pullsBefore+1)
}
