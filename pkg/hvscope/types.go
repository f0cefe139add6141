package hvscope

import (
	"github.com/FumiHubCNS/hvscope/internal/app/config"
	"github.com/FumiHubCNS/hvscope/internal/app/decode"
	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// Config re-exports the parameters-file structure so embedders can build
// or tweak it programmatically.
type Config = config.Config

type (
	StoreConfig  = config.StoreConfig
	RenderConfig = config.RenderConfig
)

type (
	// ModuleType selects the payload decoder (caen or iseg).
	ModuleType = domain.ModuleType
	// LogEntry is one raw (timestamp, JSON) row from the store.
	LogEntry = domain.LogEntry
	// Observation is one decoded per-channel reading.
	Observation = domain.Observation
	// ChannelTable is the flattened per-channel view handed to renderers.
	ChannelTable = domain.ChannelTable
)

const (
	ModuleCAEN = domain.ModuleCAEN
	ModuleISEG = domain.ModuleISEG
)

type (
	LogStore      = ports.LogStore
	Decoder       = ports.Decoder
	Renderer      = ports.Renderer
	Observability = ports.Observability
	Field         = ports.Field
)

// ErrUnknownModule is returned when no decoder exists for a module type.
var ErrUnknownModule = decode.ErrUnknownModule

// ParseModuleType maps the CLI/config spelling to a ModuleType.
func ParseModuleType(s string) (ModuleType, error) {
	return domain.ParseModuleType(s)
}

// LoadConfig loads a parameters file (TOML or YAML) from disk.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
