package decode

import (
	"encoding/json"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// isegPayload carries two parallel arrays under literal dotted keys; the
// firmware flattens its status object into the key names. iseg modules
// do not log setpoints or a status word.
type isegPayload struct {
	Voltage []any `json:"Status.voltageMeasure"`
	Current []any `json:"Status.currentMeasure"`
}

type ISEGDecoder struct {
	obs ports.Observability
}

func NewISEGDecoder(obs ports.Observability) *ISEGDecoder {
	return &ISEGDecoder{obs: obs}
}

func (d *ISEGDecoder) Module() domain.ModuleType { return domain.ModuleISEG }

func (d *ISEGDecoder) Decode(entries []domain.LogEntry) []domain.Observation {
	out := make([]domain.Observation, 0, len(entries)*domain.ModuleISEG.ChannelCount())
	for _, e := range entries {
		var p isegPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}

		volt, err := toFloats(p.Voltage)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}
		curr, err := toFloats(p.Current)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}

		n := minLen(len(volt), len(curr))
		for ch := 0; ch < n; ch++ {
			out = append(out, domain.Observation{
				Timestamp:      e.Time(),
				TimestampJST:   e.Time().In(domain.JST),
				Channel:        ch,
				VoltageMonitor: volt[ch],
				CurrentMonitor: curr[ch],
			})
		}
	}
	return out
}

var _ ports.Decoder = (*ISEGDecoder)(nil)
