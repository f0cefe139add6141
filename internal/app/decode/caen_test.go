package decode

import (
	"testing"
	"time"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// stubObs records skips so tests can assert on the error policy.
type stubObs struct {
	skipped []int64
}

func (s *stubObs) LogInfo(msg string, fields ...ports.Field)             {}
func (s *stubObs) LogError(msg string, err error, fields ...ports.Field) {}
func (s *stubObs) IncCounter(name string, v float64)                     {}
func (s *stubObs) RecordSkip(timestamp int64, err error) {
	s.skipped = append(s.skipped, timestamp)
}

func TestCAENDecodeTruncatesToShortestArray(t *testing.T) {
	obs := &stubObs{}
	d := NewCAENDecoder(obs)

	entries := []domain.LogEntry{{
		Timestamp: 1700000000,
		Payload:   []byte(`{"VMON":[1.0,2.0],"IMON":[3.0],"VSET":[4.0,5.0],"ISET":[6.0,7.0],"STAT":["ok","ok"]}`),
	}}

	rows := d.Decode(entries)
	if len(rows) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(rows))
	}

	row := rows[0]
	if row.Channel != 0 {
		t.Fatalf("expected channel 0, got %d", row.Channel)
	}
	if row.VoltageMonitor != 1.0 || row.CurrentMonitor != 3.0 {
		t.Fatalf("unexpected monitor values: vmon=%f imon=%f", row.VoltageMonitor, row.CurrentMonitor)
	}
	if row.VoltageSetpoint != 4.0 || row.CurrentSetpoint != 6.0 {
		t.Fatalf("unexpected setpoints: vset=%f iset=%f", row.VoltageSetpoint, row.CurrentSetpoint)
	}
	if row.Status != "ok" {
		t.Fatalf("expected status ok, got %q", row.Status)
	}
	if len(obs.skipped) != 0 {
		t.Fatalf("expected no skips, got %v", obs.skipped)
	}
}

func TestCAENDecodeTimestamps(t *testing.T) {
	d := NewCAENDecoder(&stubObs{})
	entries := []domain.LogEntry{{
		Timestamp: 1700000000,
		Payload:   []byte(`{"VMON":[1],"IMON":[2],"VSET":[3],"ISET":[4],"STAT":[0]}`),
	}}

	rows := d.Decode(entries)
	if len(rows) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(rows))
	}

	utc := time.Unix(1700000000, 0).UTC()
	if !rows[0].Timestamp.Equal(utc) {
		t.Fatalf("expected UTC timestamp %s, got %s", utc, rows[0].Timestamp)
	}
	if !rows[0].TimestampJST.Equal(utc) {
		t.Fatalf("JST timestamp must denote the same instant")
	}
	if _, offset := rows[0].TimestampJST.Zone(); offset != 9*60*60 {
		t.Fatalf("expected +09:00 offset, got %d", offset)
	}
}

func TestCAENDecodeSkipsInvalidJSON(t *testing.T) {
	obs := &stubObs{}
	d := NewCAENDecoder(obs)

	entries := []domain.LogEntry{
		{Timestamp: 1700000000, Payload: []byte(`{"VMON":[1],"IMON":[2],"VSET":[3],"ISET":[4],"STAT":["up"]}`)},
		{Timestamp: 1700000001, Payload: []byte(`{not json`)},
		{Timestamp: 1700000002, Payload: []byte(`{"VMON":[5],"IMON":[6],"VSET":[7],"ISET":[8],"STAT":["up"]}`)},
	}

	rows := d.Decode(entries)
	if len(rows) != 2 {
		t.Fatalf("expected skip to drop only the bad entry, got %d rows", len(rows))
	}
	if rows[0].VoltageMonitor != 1 || rows[1].VoltageMonitor != 5 {
		t.Fatalf("neighboring entries must decode: got %f and %f", rows[0].VoltageMonitor, rows[1].VoltageMonitor)
	}
	if len(obs.skipped) != 1 || obs.skipped[0] != 1700000001 {
		t.Fatalf("expected exactly timestamp 1700000001 skipped, got %v", obs.skipped)
	}
}

func TestCAENDecodeMissingKeysYieldNoRows(t *testing.T) {
	obs := &stubObs{}
	d := NewCAENDecoder(obs)

	entries := []domain.LogEntry{{
		Timestamp: 1700000000,
		Payload:   []byte(`{"VMON":[1.0,2.0],"IMON":[3.0,4.0]}`),
	}}

	rows := d.Decode(entries)
	if len(rows) != 0 {
		t.Fatalf("missing arrays should default empty and emit nothing, got %d rows", len(rows))
	}
	if len(obs.skipped) != 0 {
		t.Fatalf("missing keys are not an error, got skips %v", obs.skipped)
	}
}

func TestCAENDecodeAcceptsQuotedNumbers(t *testing.T) {
	d := NewCAENDecoder(&stubObs{})
	entries := []domain.LogEntry{{
		Timestamp: 1700000000,
		Payload:   []byte(`{"VMON":["1.5"],"IMON":["0.25"],"VSET":[2],"ISET":[3],"STAT":[1]}`),
	}}

	rows := d.Decode(entries)
	if len(rows) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(rows))
	}
	if rows[0].VoltageMonitor != 1.5 || rows[0].CurrentMonitor != 0.25 {
		t.Fatalf("quoted numbers must coerce: got vmon=%f imon=%f", rows[0].VoltageMonitor, rows[0].CurrentMonitor)
	}
	if rows[0].Status != "1" {
		t.Fatalf("numeric status should format as %q, got %q", "1", rows[0].Status)
	}
}

func TestCAENDecodeSkipsNonNumericElements(t *testing.T) {
	obs := &stubObs{}
	d := NewCAENDecoder(obs)

	entries := []domain.LogEntry{{
		Timestamp: 1700000003,
		Payload:   []byte(`{"VMON":["bogus"],"IMON":[1],"VSET":[2],"ISET":[3],"STAT":[0]}`),
	}}

	if rows := d.Decode(entries); len(rows) != 0 {
		t.Fatalf("uncoercible element should skip the entry, got %d rows", len(rows))
	}
	if len(obs.skipped) != 1 || obs.skipped[0] != 1700000003 {
		t.Fatalf("expected timestamp 1700000003 skipped, got %v", obs.skipped)
	}
}

func TestCAENDecodeOrdering(t *testing.T) {
	d := NewCAENDecoder(&stubObs{})
	entries := []domain.LogEntry{
		{Timestamp: 1700000000, Payload: []byte(`{"VMON":[1,2],"IMON":[1,2],"VSET":[1,2],"ISET":[1,2],"STAT":[0,0]}`)},
		{Timestamp: 1700000010, Payload: []byte(`{"VMON":[3,4],"IMON":[3,4],"VSET":[3,4],"ISET":[3,4],"STAT":[0,0]}`)},
	}

	rows := d.Decode(entries)
	if len(rows) != 4 {
		t.Fatalf("expected 4 observations, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Timestamp.Before(prev.Timestamp) {
			t.Fatalf("rows out of timestamp order at %d", i)
		}
		if cur.Timestamp.Equal(prev.Timestamp) && cur.Channel <= prev.Channel {
			t.Fatalf("rows out of channel order at %d", i)
		}
	}
}

func TestCAENDecodeEmptyInput(t *testing.T) {
	d := NewCAENDecoder(&stubObs{})
	if rows := d.Decode(nil); len(rows) != 0 {
		t.Fatalf("empty input must yield empty output, got %d rows", len(rows))
	}
}
