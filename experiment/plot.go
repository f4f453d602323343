package experiment

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderRegretChart writes an HTML line chart of each policy's cumulative
// regret over time.
func RenderRegretChart(report *Report, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%d-armed bandit", report.Arms),
			Subtitle: "Cumulative regret over time",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	steps := make([]string, report.Steps)
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i)
	}
	line = line.SetXAxis(steps)

	for _, result := range report.Results {
		items := make([]opts.LineData, 0, len(result.Regrets))
		for _, regret := range result.Regrets {
			items = append(items, opts.LineData{Value: regret})
		}
		line.AddSeries(result.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("experiment: render chart: %w", err)
	}
	return nil
}
