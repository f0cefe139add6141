package domain

import "fmt"

// ModuleType identifies the power-supply hardware family a monitor log
// row came from. The payload shape and channel count depend on it.
type ModuleType int

const (
	ModuleUnknown ModuleType = iota
	ModuleCAEN
	ModuleISEG
)

// ChannelCount returns the number of channels a module of this family exposes.
func (m ModuleType) ChannelCount() int {
	switch m {
	case ModuleCAEN:
		return 4
	case ModuleISEG:
		return 6
	default:
		return 0
	}
}

// HasSetpoints reports whether the family logs commanded values alongside
// the measured ones.
func (m ModuleType) HasSetpoints() bool {
	return m == ModuleCAEN
}

func (m ModuleType) String() string {
	switch m {
	case ModuleCAEN:
		return "caen"
	case ModuleISEG:
		return "iseg"
	default:
		return "unknown"
	}
}

// ParseModuleType maps the CLI/config spelling to a ModuleType.
func ParseModuleType(s string) (ModuleType, error) {
	switch s {
	case "caen":
		return ModuleCAEN, nil
	case "iseg":
		return ModuleISEG, nil
	default:
		return ModuleUnknown, fmt.Errorf("unknown module type %q", s)
	}
}
