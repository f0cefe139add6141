package observability

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// PromObs pairs structured logging with Prometheus counters for decode
// outcomes, so scripted runs can assert on skip counts.
type PromObs struct {
	log      *slog.Logger
	counters map[string]prometheus.Counter
}

func NewPromObs() *PromObs {
	read := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hvscope_records_read_total",
		Help: "Raw log entries handed to a decoder.",
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hvscope_records_skipped_total",
		Help: "Log entries dropped because the payload could not be decoded.",
	})
	emitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hvscope_observations_total",
		Help: "Per-channel observations emitted by the decoders.",
	})

	prometheus.MustRegister(read, skipped, emitted)

	return &PromObs{
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		counters: map[string]prometheus.Counter{
			"hvscope_records_read_total":    read,
			"hvscope_records_skipped_total": skipped,
			"hvscope_observations_total":    emitted,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.log.Info(msg, attrs(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	p.log.Error(msg, append(attrs(fields), slog.Any("err", err))...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) RecordSkip(timestamp int64, err error) {
	p.IncCounter("hvscope_records_skipped_total", 1)
	p.log.Warn("invalid payload, entry skipped",
		slog.Int64("timestamp", timestamp), slog.Any("err", err))
}

func attrs(fields []ports.Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

var _ ports.Observability = (*PromObs)(nil)

// Nop discards all logs and metrics; handy for tests and library callers
// that bring their own telemetry.
type Nop struct{}

func (Nop) LogInfo(msg string, fields ...ports.Field)             {}
func (Nop) LogError(msg string, err error, fields ...ports.Field) {}
func (Nop) IncCounter(name string, v float64)                     {}
func (Nop) RecordSkip(timestamp int64, err error)                 {}

var _ ports.Observability = Nop{}
