package transport

import (
	"net"
	"testing"

	"matchbook/clock"
	"matchbook/engine"
	"matchbook/output"
)

func newTestWorker(t *testing.T) (*Worker, net.Conn, *output.Recorder) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() { client.Close() })

	rec := output.NewRecorder()
	eng := engine.New(engine.NewOrderBook(), clock.New(), rec)
	w := NewWorker(server, eng)
	return w, client, rec
}

func TestDispatchSubmitAddsRestingOrder(t *testing.T) {
	w, _, rec := newTestWorker(t)

	if err := w.dispatch("SUBMIT 1 AAPL buy 100 10"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	adds, _, _ := rec.Snapshot()
	if len(adds) != 1 || adds[0].OrderID != 1 || adds[0].Instrument != "AAPL" {
		t.Fatalf("expected one resting add, got %+v", adds)
	}
}

func TestDispatchSubmitRejectsBadSide(t *testing.T) {
	w, _, _ := newTestWorker(t)
	if err := w.dispatch("SUBMIT 1 AAPL sideways 100 10"); err == nil {
		t.Fatalf("expected an error for an invalid side")
	}
}

func TestDispatchCancelRejectsUnknownOrder(t *testing.T) {
	w, _, rec := newTestWorker(t)
	if err := w.dispatch("CANCEL 99"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	_, _, deletes := rec.Snapshot()
	if len(deletes) != 1 || deletes[0].Accepted {
		t.Fatalf("expected a rejected cancel, got %+v", deletes)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	w, _, _ := newTestWorker(t)
	if err := w.dispatch("FROB 1"); err == nil {
		t.Fatalf("expected an error for an unrecognized command")
	}
}
