package ports

import (
	"context"

	"github.com/FumiHubCNS/hvscope/internal/domain"
)

// LogStore reads raw monitor-log rows for one module address, ordered by
// timestamp ascending. Ordering is the store's responsibility; decoders
// assert it rather than re-sort.
type LogStore interface {
	ReadAll(ctx context.Context, address string) ([]domain.LogEntry, error)
	Close() error
}
