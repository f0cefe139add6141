package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// PNGRenderer draws the same two stacked panels as the HTML renderer but
// as a static image, for headless boxes and shift reports.
type PNGRenderer struct {
	path  string
	every int
}

func NewPNGRenderer(path string, every int) *PNGRenderer {
	return &PNGRenderer{path: path, every: every}
}

func (r *PNGRenderer) Name() string { return "png" }

func (r *PNGRenderer) Render(t *domain.ChannelTable) error {
	parts := t.Partitions()

	voltage := r.newPanel(t, "VMON")
	current := r.newPanel(t, "IMON")

	for ch, rows := range parts {
		rows = domain.Decimate(rows, r.every)
		if len(rows) == 0 {
			continue
		}
		if err := plotutil.AddLinePoints(voltage,
			fmt.Sprintf("VMON ch%d", ch), xys(rows, func(o domain.Observation) float64 { return o.VoltageMonitor }),
		); err != nil {
			return fmt.Errorf("voltage panel ch%d: %w", ch, err)
		}
		if err := plotutil.AddLinePoints(current,
			fmt.Sprintf("IMON ch%d", ch), xys(rows, func(o domain.Observation) float64 { return o.CurrentMonitor }),
		); err != nil {
			return fmt.Errorf("current panel ch%d: %w", ch, err)
		}
	}

	img := vgimg.New(12*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 3}

	panels := [][]*plot.Plot{{voltage}, {current}}
	canvases := plot.Align(panels, tiles, dc)
	voltage.Draw(canvases[0][0])
	current.Draw(canvases[1][0])

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func (r *PNGRenderer) newPanel(t *domain.ChannelTable, axis string) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s over Time (%s, %s)", axis, t.Filter, t.Module)
	p.X.Label.Text = "Timestamp JST"
	p.Y.Label.Text = axis
	p.X.Tick.Marker = plot.TimeTicks{
		Format: "01-02\n15:04",
		Time:   plot.UnixTimeIn(domain.JST),
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func xys(rows []domain.Observation, value func(domain.Observation) float64) plotter.XYs {
	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		pts[i].X = float64(row.Timestamp.Unix())
		pts[i].Y = value(row)
	}
	return pts
}

var _ ports.Renderer = (*PNGRenderer)(nil)
