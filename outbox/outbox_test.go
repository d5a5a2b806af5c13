package outbox

import (
	"os"
	"testing"
)

func newTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	dir, err := os.MkdirTemp("", "outbox-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	box, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { box.Close() })
	return box
}

func TestPutAndGetRoundTrips(t *testing.T) {
	box := newTestOutbox(t)

	if err := box.Put(1, []byte("hello")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	rec, err := box.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.State != StateNew || string(rec.Payload) != "hello" {
		t.Fatalf("got %+v", rec)
	}
}

func TestStateTransitions(t *testing.T) {
	box := newTestOutbox(t)
	box.Put(1, []byte("x"))

	if err := box.MarkSent(1); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}
	rec, _ := box.Get(1)
	if rec.State != StateSent {
		t.Fatalf("expected SENT, got %v", rec.State)
	}

	if err := box.MarkAcked(1); err != nil {
		t.Fatalf("MarkAcked: %v", err)
	}
	rec, _ = box.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("expected ACKED, got %v", rec.State)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	box := newTestOutbox(t)
	box.Put(1, []byte("a"))
	box.Put(2, []byte("b"))
	box.Put(3, []byte("c"))
	box.MarkSent(2)
	box.MarkAcked(2)

	var seen []uint64
	err := box.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanPending: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("expected [1 3], got %v", seen)
	}
}

func TestScanPendingAscendingOrder(t *testing.T) {
	box := newTestOutbox(t)
	for _, seq := range []uint64{5, 1, 3, 2, 4} {
		box.Put(seq, []byte("x"))
	}

	var seen []uint64
	box.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	want := []uint64{1, 2, 3, 4, 5}
	for i, w := range want {
		if seen[i] != w {
			t.Fatalf("expected ascending order %v, got %v", want, seen)
		}
	}
}
