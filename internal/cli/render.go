package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/drodr32/CTA-Database-App/internal/models"
)

const chartHeight = 12

// comma formats a count with thousands separators, matching the report's
// historical number style.
func comma(n int64) string {
	return humanize.Comma(n)
}

// formatCoord renders a coordinate with its full stored precision and no
// trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// offerPlot asks the operator whether to chart the dataset and renders it on
// a "y". The prompt text varies slightly by command and is passed through
// verbatim.
func (c *CLI) offerPlot(promptText string, dataset models.ChartableDataset) {
	answer, ok := c.prompt(promptText)
	if !ok {
		return
	}
	if strings.TrimSpace(strings.ToLower(answer)) != "y" {
		return
	}
	c.renderChart(dataset)
}

// renderChart draws the dataset as a terminal line chart. This is the
// matplotlib stand-in: the core hands over ordered series and the CLI owns
// how they look.
func (c *CLI) renderChart(dataset models.ChartableDataset) {
	if len(dataset.Series) == 0 {
		return
	}

	var plot string
	if len(dataset.Series) == 1 {
		plot = asciigraph.Plot(dataset.Series[0].Values,
			asciigraph.Height(chartHeight),
			asciigraph.Caption(dataset.Title))
	} else {
		data := make([][]float64, 0, len(dataset.Series))
		for _, s := range dataset.Series {
			data = append(data, s.Values)
		}
		plot = asciigraph.PlotMany(data,
			asciigraph.Height(chartHeight),
			asciigraph.Caption(dataset.Title))
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, plot)

	if len(dataset.Series) > 1 {
		names := make([]string, 0, len(dataset.Series))
		for _, s := range dataset.Series {
			names = append(names, s.Name)
		}
		fmt.Fprintf(c.out, "Series: %s\n", strings.Join(names, ", "))
	}
	if dataset.XLabel != "" || dataset.YLabel != "" {
		fmt.Fprintf(c.out, "x: %s, y: %s\n", dataset.XLabel, dataset.YLabel)
	}
}
