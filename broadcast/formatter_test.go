package broadcast

import (
	"encoding/json"
	"os"
	"testing"

	"matchbook/outbox"
)

func newTestOutbox(t *testing.T) *outbox.Outbox {
	t.Helper()
	dir, err := os.MkdirTemp("", "broadcast-outbox-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	box, err := outbox.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { box.Close() })
	return box
}

func TestOutboxFormatterQueuesEachEventKind(t *testing.T) {
	box := newTestOutbox(t)
	f := NewOutboxFormatter(box)

	f.OrderAdded(1, "AAPL", 100, 10, false, 5)
	f.OrderExecuted(1, 2, 1, 100, 5, 6)
	f.OrderDeleted(3, true, 7)

	var kinds []string
	err := box.ScanPending(func(rec outbox.Record) error {
		var e Event
		if err := json.Unmarshal(rec.Payload, &e); err != nil {
			return err
		}
		kinds = append(kinds, e.Type)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanPending: %v", err)
	}
	if len(kinds) != 3 || kinds[0] != "added" || kinds[1] != "executed" || kinds[2] != "deleted" {
		t.Fatalf("unexpected event order/kinds: %v", kinds)
	}
}

func TestOutboxFormatterPreservesFields(t *testing.T) {
	box := newTestOutbox(t)
	f := NewOutboxFormatter(box)

	f.OrderExecuted(10, 20, 3, 150, 7, 42)

	rec, err := box.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var e Event
	if err := json.Unmarshal(rec.Payload, &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.RestingID != 10 || e.ActiveID != 20 || e.ExecutionID != 3 || e.Price != 150 || e.Qty != 7 || e.Timestamp != 42 {
		t.Fatalf("fields lost in round-trip: %+v", e)
	}
}
