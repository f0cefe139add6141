package ports

import "github.com/FumiHubCNS/hvscope/internal/domain"

// Decoder flattens raw log entries of one module family into per-channel
// observations. Malformed payloads are skipped and reported through
// Observability, never returned as errors: a single bad record must not
// abort a decode.
type Decoder interface {
	Module() domain.ModuleType
	Decode(entries []domain.LogEntry) []domain.Observation
}
