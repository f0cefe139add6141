package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// CSVRenderer dumps the channel table for scripted inspection. Rows keep
// the (timestamp, channel) order of the table; decimation is applied per
// channel so the output mirrors what the charts would show.
type CSVRenderer struct {
	w     io.Writer
	every int
}

func NewCSVRenderer(w io.Writer, every int) *CSVRenderer {
	return &CSVRenderer{w: w, every: every}
}

func (r *CSVRenderer) Name() string { return "csv" }

func (r *CSVRenderer) Render(t *domain.ChannelTable) error {
	cw := csv.NewWriter(r.w)

	header := []string{"timestamp_utc", "timestamp_jst", "channel", "voltage_monitor", "current_monitor"}
	if t.Module.HasSetpoints() {
		header = append(header, "voltage_setpoint", "current_setpoint", "status")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	seen := make([]int, t.Module.ChannelCount())
	for _, row := range t.Rows {
		keep := true
		if r.every > 1 && row.Channel >= 0 && row.Channel < len(seen) {
			keep = seen[row.Channel]%r.every == 0
			seen[row.Channel]++
		}
		if !keep {
			continue
		}

		rec := []string{
			row.Timestamp.Format(time.RFC3339),
			row.TimestampJST.Format(time.RFC3339),
			strconv.Itoa(row.Channel),
			formatFloat(row.VoltageMonitor),
			formatFloat(row.CurrentMonitor),
		}
		if t.Module.HasSetpoints() {
			rec = append(rec, formatFloat(row.VoltageSetpoint), formatFloat(row.CurrentSetpoint), row.Status)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var _ ports.Renderer = (*CSVRenderer)(nil)
