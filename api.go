package hvscope

import (
	base "github.com/FumiHubCNS/hvscope/pkg/hvscope"
)

// Re-exported error for convenience.
var ErrUnknownModule = base.ErrUnknownModule

// Type aliases so consumers can import github.com/FumiHubCNS/hvscope directly.
type (
	Config        = base.Config
	StoreConfig   = base.StoreConfig
	RenderConfig  = base.RenderConfig
	ModuleType    = base.ModuleType
	LogEntry      = base.LogEntry
	Observation   = base.Observation
	ChannelTable  = base.ChannelTable
	LogStore      = base.LogStore
	Decoder       = base.Decoder
	Renderer      = base.Renderer
	Observability = base.Observability
	Field         = base.Field
	Inspection    = base.Inspection
	Option        = base.Option
)

const (
	ModuleCAEN = base.ModuleCAEN
	ModuleISEG = base.ModuleISEG
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func ParseModuleType(s string) (ModuleType, error) {
	return base.ParseModuleType(s)
}

// Inspection builder helpers.
func Conf(path string, opts ...Option) (*Inspection, error) {
	return base.Conf(path, opts...)
}

func ConfFromConfig(cfg *Config, opts ...Option) (*Inspection, error) {
	return base.ConfFromConfig(cfg, opts...)
}

func WithStore(s LogStore) Option {
	return base.WithStore(s)
}

func WithObservability(obs Observability) Option {
	return base.WithObservability(obs)
}
