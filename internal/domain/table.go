package domain

// ChannelTable is the flattened per-channel view of one module's monitor
// log, ordered by (timestamp, channel). It is a passive shape: renderers
// partition and subsample it but never mutate Rows.
type ChannelTable struct {
	Module  ModuleType
	Filter  string
	Address string
	Rows    []Observation
}

func NewChannelTable(module ModuleType, filter, address string, rows []Observation) *ChannelTable {
	return &ChannelTable{Module: module, Filter: filter, Address: address, Rows: rows}
}

func (t *ChannelTable) Len() int { return len(t.Rows) }

// Partitions splits the table by channel index into ChannelCount buckets.
// Rows keep their timestamp order within each bucket; channels that never
// appear yield empty buckets.
func (t *ChannelTable) Partitions() [][]Observation {
	parts := make([][]Observation, t.Module.ChannelCount())
	for _, row := range t.Rows {
		if row.Channel < 0 || row.Channel >= len(parts) {
			continue
		}
		parts[row.Channel] = append(parts[row.Channel], row)
	}
	return parts
}

// Decimate returns every Nth row of rows, starting with the first. It is
// a display-side view: the input slice is left untouched and every <= 1
// returns it as-is.
func Decimate(rows []Observation, every int) []Observation {
	if every <= 1 || len(rows) == 0 {
		return rows
	}
	out := make([]Observation, 0, (len(rows)+every-1)/every)
	for i := 0; i < len(rows); i += every {
		out = append(out, rows[i])
	}
	return out
}
