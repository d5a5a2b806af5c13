// Package engine wires ConnectionWorker inputs to InstrumentBook
// operations and the per-connection OrderRegistry (spec §4.4). It is
// the only place a Submit or Cancel command touches both the
// process-wide instrument registry and a single connection's order
// registry.
package engine

import (
	"matchbook/book"
	"matchbook/clock"
	"matchbook/output"
)

// MatchingEngine drives the matching and cancel protocols.
type MatchingEngine struct {
	book  *OrderBook
	clock *clock.Source
	out   output.Formatter
}

// Book exposes the process-wide OrderBook for callers that need to
// enumerate instruments (e.g. for metrics), without handing out
// mutation access to anything else the engine owns.
func (e *MatchingEngine) Book() *OrderBook {
	return e.book
}

// New constructs a MatchingEngine over a process-wide OrderBook, a
// shared timestamp Source, and the OutputFormatter every emitted
// event is sent to.
func New(ob *OrderBook, clk *clock.Source, out output.Formatter) *MatchingEngine {
	return &MatchingEngine{book: ob, clock: clk, out: out}
}

// Submit constructs the order, records it in conn's registry, and
// invokes the owning instrument's matching protocol (spec §4.4
// SUBMIT). The returned order is the one that was just submitted,
// for callers that need to track it (e.g. a transport assigning a
// response).
func (e *MatchingEngine) Submit(conn *OrderRegistry, id uint64, instrument string, side book.Side, price int64, count int64) *book.Order {
	ts := e.clock.Now()
	o := book.NewOrder(id, instrument, price, side, count, ts)
	conn.Record(o)

	inst := e.book.InstrumentFor(instrument)
	inst.Submit(o, e.clock, e.out)
	return o
}

// Cancel looks up id in conn's registry and, if present, invokes the
// owning instrument's cancel protocol; if absent, it is a non-error
// reject with no other effect (spec §4.4 CANCEL, §7 UnknownOrder).
func (e *MatchingEngine) Cancel(conn *OrderRegistry, id uint64) {
	o, ok := conn.Lookup(id)
	if !ok {
		e.out.OrderDeleted(id, false, e.clock.Now())
		return
	}
	inst := e.book.InstrumentFor(o.Instrument)
	inst.Cancel(o, e.clock, e.out)
}
