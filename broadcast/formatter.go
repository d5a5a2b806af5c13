package broadcast

import (
	"sync/atomic"

	"matchbook/outbox"
	"matchbook/output"
)

// OutboxFormatter is an output.Formatter that durably queues every
// event for delivery instead of rendering it directly. It assigns each
// event its own monotonic sequence number, independent of the
// matching engine's order timestamps, so the outbox can be scanned in
// emission order regardless of which instrument produced the event.
type OutboxFormatter struct {
	box *outbox.Outbox
	seq atomic.Uint64
}

// NewOutboxFormatter wraps box as a Formatter.
func NewOutboxFormatter(box *outbox.Outbox) *OutboxFormatter {
	return &OutboxFormatter{box: box}
}

func (f *OutboxFormatter) next() uint64 {
	return f.seq.Add(1)
}

func (f *OutboxFormatter) put(e Event) {
	seq := f.next()
	if err := f.box.Put(seq, encode(e)); err != nil {
		// The outbox is local disk state; a write failure here means
		// the event is lost to the broadcast path, but the formatter
		// has no recovery action available to it other than surfacing
		// the failure to whatever monitors the process.
		panic(err)
	}
}

func (f *OutboxFormatter) OrderAdded(orderID uint64, instrument string, price int64, count int64, isSell bool, timestamp uint64) {
	f.put(Event{
		Type:       "added",
		OrderID:    orderID,
		Instrument: instrument,
		Price:      price,
		Count:      count,
		IsSell:     isSell,
		Timestamp:  timestamp,
	})
}

func (f *OutboxFormatter) OrderExecuted(restingID, activeID uint64, executionID uint64, price int64, qty int64, timestamp uint64) {
	f.put(Event{
		Type:        "executed",
		RestingID:   restingID,
		ActiveID:    activeID,
		ExecutionID: executionID,
		Price:       price,
		Qty:         qty,
		Timestamp:   timestamp,
	})
}

func (f *OutboxFormatter) OrderDeleted(orderID uint64, accepted bool, timestamp uint64) {
	f.put(Event{
		Type:      "deleted",
		OrderID:   orderID,
		Accepted:  accepted,
		Timestamp: timestamp,
	})
}

var _ output.Formatter = (*OutboxFormatter)(nil)
