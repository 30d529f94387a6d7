package ndstats

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderBarChart writes an HTML bar chart of a 1-D histogram to w, one bar
// per bin, labelled with the bin's interval. Only 1-D histograms can be
// rendered; higher dimensionalities fail with ErrDimensionMismatch.
func (h *Histogram) RenderBarChart(w io.Writer, title string) error {
	if h.grid.NDim() != 1 {
		return fmt.Errorf("%w: bar chart needs a 1-D histogram, got %d dimensions",
			ErrDimensionMismatch, h.grid.NDim())
	}
	edges := h.grid.dims[0]
	nbins := edges.NumBins()
	labels := make([]string, nbins)
	data := make([]opts.BarData, nbins)
	for i := 0; i < nbins; i++ {
		bracket := ")"
		if i == nbins-1 {
			bracket = "]" // top bin is closed
		}
		labels[i] = fmt.Sprintf("[%g, %g%s", edges[i], edges[i+1], bracket)
		data[i] = opts.BarData{Value: h.counts.data[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d bins, %d out of range", nbins, h.outOfRange),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "bin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("count", data)
	return bar.Render(w)
}
