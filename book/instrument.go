package book

import (
	"sync"

	"matchbook/clock"
	"matchbook/ops"
	"matchbook/output"
)

// Instrument is the per-symbol matching substrate: one MaxOPS for
// bids, one MinOPS for asks, and the matching mutex M that serializes
// submit and cancel on this instrument (spec §4.3). It is created
// once per symbol and never destroyed during process lifetime.
type Instrument struct {
	Symbol string
	bids   *ops.OPS[*Order] // MaxOPS: descending price, ascending time
	asks   *ops.OPS[*Order] // MinOPS: ascending price, ascending time

	mu sync.Mutex // M
}

// NewInstrument constructs an empty book for symbol.
func NewInstrument(symbol string) *Instrument {
	return &Instrument{
		Symbol: symbol,
		bids:   ops.New[*Order](bidLess),
		asks:   ops.New[*Order](askLess),
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Submit runs the matching protocol for active (spec §4.3 submit).
// It must be called with active freshly constructed and not yet
// resting anywhere.
func (b *Instrument) Submit(active *Order, clk *clock.Source, out output.Formatter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	opposite := b.asks
	if active.Side == Sell {
		opposite = b.bids
	}

	for active.Available() && !opposite.Empty() {
		best, ok := opposite.Top()
		if !ok {
			break
		}
		if active.Side == Buy && active.Price < best.Price {
			break
		}
		if active.Side == Sell && active.Price > best.Price {
			break
		}

		qty := min64(active.Remaining, best.Remaining)
		ts := clk.Now()

		active.Remaining -= qty
		best.Remaining -= qty

		out.OrderExecuted(best.ID, active.ID, best.ExecutionID, best.Price, qty, ts)
		best.ExecutionID++

		if best.Remaining == 0 {
			if !opposite.Erase(best) {
				panic("book: structural invariant violation: resting order missing from OPS on removal")
			}
		}
	}

	if active.Available() {
		active.RestTimestamp = clk.Now()
		same := b.bids
		if active.Side == Sell {
			same = b.asks
		}
		same.Insert(active)
		out.OrderAdded(active.ID, b.Symbol, active.Price, active.Remaining, active.Side == Sell, active.RestTimestamp)
	}
}

// Cancel runs the cancellation protocol for order (spec §4.3 cancel).
func (b *Instrument) Cancel(order *Order, clk *clock.Source, out output.Formatter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ts := clk.Now()

	if !order.Available() {
		out.OrderDeleted(order.ID, false, ts)
		return
	}

	order.Cancelled = true

	same := b.bids
	if order.Side == Sell {
		same = b.asks
	}
	if !same.Erase(order) {
		panic("book: structural invariant violation: available order missing from its OPS on cancel")
	}

	out.OrderDeleted(order.ID, true, ts)
}

// BestBid returns the top-ranked resting buy order, for diagnostics
// and snapshot queries.
func (b *Instrument) BestBid() (*Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bids.Top()
}

// BestAsk returns the top-ranked resting sell order, for diagnostics
// and snapshot queries.
func (b *Instrument) BestAsk() (*Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.asks.Top()
}

// Depth returns the number of resting buy and sell orders.
func (b *Instrument) Depth() (bids, asks int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bids.Len(), b.asks.Len()
}
