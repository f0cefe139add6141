package domain

import "time"

// JST is the fixed +09:00 offset used for chart axes.
var JST = time.FixedZone("JST", 9*60*60)

// LogEntry is one raw row of the monitor log store: a polling-cycle
// timestamp and the JSON payload the module reported at that instant.
type LogEntry struct {
	Timestamp int64  `db:"timestamp"`
	Payload   []byte `db:"json_data"`
}

// Time returns the entry timestamp in UTC.
func (e LogEntry) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// Observation is one decoded per-channel reading. Observations are
// transient: they live only for the duration of a run and are never
// written back to the store.
type Observation struct {
	Timestamp    time.Time `json:"timestamp_utc"`
	TimestampJST time.Time `json:"timestamp_jst"`
	Channel      int       `json:"channel"`

	VoltageMonitor float64 `json:"voltage_monitor"`
	CurrentMonitor float64 `json:"current_monitor"`

	// Setpoints and status are only populated for families that log them
	// (see ModuleType.HasSetpoints).
	VoltageSetpoint float64 `json:"voltage_setpoint,omitempty"`
	CurrentSetpoint float64 `json:"current_setpoint,omitempty"`
	Status          string  `json:"status,omitempty"`
}
