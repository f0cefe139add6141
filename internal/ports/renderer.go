package ports

import "github.com/FumiHubCNS/hvscope/internal/domain"

// Renderer consumes a decoded channel table and produces some external
// representation of it (chart file, CSV, ...). Renderers must treat the
// table as read-only.
type Renderer interface {
	Render(t *domain.ChannelTable) error
	Name() string
}
