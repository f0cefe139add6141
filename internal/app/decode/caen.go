package decode

import (
	"encoding/json"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// caenPayload is the per-cycle snapshot a CAEN module logs: five parallel
// arrays indexed by channel. Elements of STAT are passed through untyped.
// Missing keys decode to nil and simply drive the channel count to zero.
type caenPayload struct {
	VMON []any `json:"VMON"`
	IMON []any `json:"IMON"`
	VSET []any `json:"VSET"`
	ISET []any `json:"ISET"`
	STAT []any `json:"STAT"`
}

type CAENDecoder struct {
	obs ports.Observability
}

func NewCAENDecoder(obs ports.Observability) *CAENDecoder {
	return &CAENDecoder{obs: obs}
}

func (d *CAENDecoder) Module() domain.ModuleType { return domain.ModuleCAEN }

func (d *CAENDecoder) Decode(entries []domain.LogEntry) []domain.Observation {
	out := make([]domain.Observation, 0, len(entries)*domain.ModuleCAEN.ChannelCount())
	for _, e := range entries {
		var p caenPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}

		vmon, err := toFloats(p.VMON)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}
		imon, err := toFloats(p.IMON)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}
		vset, err := toFloats(p.VSET)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}
		iset, err := toFloats(p.ISET)
		if err != nil {
			d.obs.RecordSkip(e.Timestamp, err)
			continue
		}

		// Arrays are not guaranteed equal length; truncate to the
		// shortest so each timestamp stays rectangular.
		n := minLen(len(vmon), len(imon), len(vset), len(iset), len(p.STAT))
		for ch := 0; ch < n; ch++ {
			out = append(out, domain.Observation{
				Timestamp:       e.Time(),
				TimestampJST:    e.Time().In(domain.JST),
				Channel:         ch,
				VoltageMonitor:  vmon[ch],
				CurrentMonitor:  imon[ch],
				VoltageSetpoint: vset[ch],
				CurrentSetpoint: iset[ch],
				Status:          statusString(p.STAT[ch]),
			})
		}
	}
	return out
}

var _ ports.Decoder = (*CAENDecoder)(nil)
