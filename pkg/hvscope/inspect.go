package hvscope

import (
	"context"
	"fmt"

	"github.com/FumiHubCNS/hvscope/internal/adapters/observability"
	"github.com/FumiHubCNS/hvscope/internal/adapters/store"
	"github.com/FumiHubCNS/hvscope/internal/app/decode"
	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// Inspection bundles the parameters file with store and telemetry wiring
// for one or more diagnostic runs. The zero configuration opens the
// SQLite store named by the config and stays silent.
type Inspection struct {
	cfg   *Config
	store ports.LogStore
	obs   ports.Observability
}

// Option overrides a collaborator on the Inspection.
type Option func(*Inspection)

// WithStore injects a custom log store (another database, fixtures, ...).
// The caller keeps ownership: Inspection will not close it.
func WithStore(s ports.LogStore) Option {
	return func(in *Inspection) {
		in.store = s
	}
}

// WithObservability plugs in logging/metrics; the default discards both.
func WithObservability(obs ports.Observability) Option {
	return func(in *Inspection) {
		in.obs = obs
	}
}

// Conf loads the parameters file and returns an Inspection.
func Conf(path string, opts ...Option) (*Inspection, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return ConfFromConfig(cfg, opts...)
}

// ConfFromConfig bootstraps an Inspection from an in-memory Config.
func ConfFromConfig(cfg *Config, opts ...Option) (*Inspection, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	in := &Inspection{cfg: cfg, obs: observability.Nop{}}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in, nil
}

// Config returns the underlying configuration.
func (in *Inspection) Config() *Config {
	if in == nil {
		return nil
	}
	return in.cfg
}

// Table reads the monitor log for the named filter and decodes it into a
// per-channel table. dbOverride, when non-empty, replaces the configured
// database path for this run.
func (in *Inspection) Table(ctx context.Context, module ModuleType, filter, dbOverride string) (*ChannelTable, error) {
	address, err := in.cfg.ModuleAddress(filter)
	if err != nil {
		return nil, err
	}

	dec, err := decode.ForModule(module, in.obs)
	if err != nil {
		return nil, err
	}

	st := in.store
	if st == nil {
		opened, err := store.Open(in.cfg.DatabasePath(dbOverride), in.cfg.Store.Table)
		if err != nil {
			return nil, err
		}
		defer opened.Close()
		st = opened
	}

	entries, err := st.ReadAll(ctx, address)
	if err != nil {
		return nil, err
	}
	in.obs.IncCounter("hvscope_records_read_total", float64(len(entries)))

	rows := dec.Decode(entries)
	in.obs.IncCounter("hvscope_observations_total", float64(len(rows)))
	in.obs.LogInfo("monitor log decoded",
		Field{Key: "module", Value: module.String()},
		Field{Key: "filter", Value: filter},
		Field{Key: "entries", Value: len(entries)},
		Field{Key: "observations", Value: len(rows)},
	)

	return domain.NewChannelTable(module, filter, address, rows), nil
}

// Render is a shortcut for Table followed by the renderer.
func (in *Inspection) Render(ctx context.Context, module ModuleType, filter, dbOverride string, r Renderer) error {
	table, err := in.Table(ctx, module, filter, dbOverride)
	if err != nil {
		return err
	}
	if err := r.Render(table); err != nil {
		return fmt.Errorf("%s renderer: %w", r.Name(), err)
	}
	return nil
}
