package decode

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// ErrUnknownModule is returned when no decoder exists for a module type.
// Callers must treat it as a configuration error rather than render an
// empty table.
var ErrUnknownModule = errors.New("no decoder for module type")

// ForModule selects the decoder implementation for a module family.
func ForModule(m domain.ModuleType, obs ports.Observability) (ports.Decoder, error) {
	switch m {
	case domain.ModuleCAEN:
		return NewCAENDecoder(obs), nil
	case domain.ModuleISEG:
		return NewISEGDecoder(obs), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, m)
	}
}

// toFloats coerces a decoded JSON array element-wise to float64. Modules
// report numbers, but some firmware revisions quote them, so numeric
// strings are accepted too.
func toFloats(vals []any) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case float64:
			out[i] = x
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("element %d: unexpected type %T", i, v)
		}
	}
	return out, nil
}

func statusString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func minLen(lens ...int) int {
	m := lens[0]
	for _, l := range lens[1:] {
		if l < m {
			m = l
		}
	}
	return m
}
