package bench

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes the results as a self-contained echarts bar chart.
func RenderHTML(w io.Writer, results []Result) error {
	names := make([]string, 0, len(results))
	bars := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
		bars = append(bars, opts.BarData{Value: r.Mops()})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "append throughput",
			Subtitle: "million operations per second, higher is better",
		}),
	)
	bar.SetXAxis(names).AddSeries("Mops/s", bars)
	return bar.Render(w)
}
