package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

const timeLayout = "2006-01-02 15:04:05"

// HTMLRenderer writes a self-contained page with two stacked line charts,
// voltage and current per channel over JST time. Open it in a browser for
// zoom and hover inspection.
type HTMLRenderer struct {
	path  string
	every int
}

func NewHTMLRenderer(path string, every int) *HTMLRenderer {
	return &HTMLRenderer{path: path, every: every}
}

func (r *HTMLRenderer) Name() string { return "html" }

func (r *HTMLRenderer) Render(t *domain.ChannelTable) error {
	parts := t.Partitions()

	voltage := r.newLine(t, "VMON")
	current := r.newLine(t, "IMON")
	for ch, rows := range parts {
		rows = domain.Decimate(rows, r.every)
		voltage.AddSeries(fmt.Sprintf("VMON ch%d", ch), lineData(rows, func(o domain.Observation) float64 { return o.VoltageMonitor }))
		current.AddSeries(fmt.Sprintf("IMON ch%d", ch), lineData(rows, func(o domain.Observation) float64 { return o.CurrentMonitor }))
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s (%s)", t.Filter, t.Module)
	page.AddCharts(voltage, current)

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func (r *HTMLRenderer) newLine(t *domain.ChannelTable, axis string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s over Time (%s, %s)", axis, t.Filter, t.Module),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "Timestamp JST"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axis}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	return line
}

func lineData(rows []domain.Observation, value func(domain.Observation) float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		data = append(data, opts.LineData{
			Value: []any{row.TimestampJST.Format(timeLayout), value(row)},
		})
	}
	return data
}

var _ ports.Renderer = (*HTMLRenderer)(nil)
