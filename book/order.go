// Package book implements the InstrumentBook: the per-symbol matching
// substrate that owns one buy-side and one sell-side Ordered Priority
// Structure plus the matching mutex that serializes all structural
// mutation on that instrument (spec §4.3).
//
// Grounded on the shape of
// _examples/UmarFarooq-MP-Loki/domain/orderbook/order_book.go (the
// match-then-rest loop) and the method names of
// _examples/original_source/instrument_book.hpp
// (execute_buy_order/execute_sell_order/execute_cancel_order, here
// collapsed to Submit/Cancel under the single mutex the spec
// canonicalizes instead of the original's separate buy/sell mutexes).
package book

// Side identifies which side of the book an order belongs to.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

// Order is the shared, identity-stable record held both by the
// submitting connection's registry and, while resting, by an
// Instrument's Ordered Priority Structure. Every mutable field is
// only ever touched while the owning Instrument's matching mutex is
// held (spec §3, §5).
type Order struct {
	// Immutable for the order's lifetime.
	ID                  uint64
	Instrument          string
	Price               int64
	Side                Side
	SubmissionTimestamp uint64

	// RestTimestamp is the timestamp recorded at the moment this
	// order actually entered an OPS (spec §4.3 step 3). It starts
	// equal to SubmissionTimestamp and is the value the price-time
	// comparator reads; it never changes once the order is resting.
	RestTimestamp uint64

	// Mutable, serialized by the owning Instrument's mutex.
	Remaining   int64
	ExecutionID uint64
	Cancelled   bool
}

// NewOrder constructs a fresh order in the NEW state (spec §4.3 state
// machine), not yet matched or resting.
func NewOrder(id uint64, instrument string, price int64, side Side, count int64, ts uint64) *Order {
	return &Order{
		ID:                  id,
		Instrument:          instrument,
		Price:               price,
		Side:                side,
		SubmissionTimestamp: ts,
		RestTimestamp:       ts,
		Remaining:           count,
		ExecutionID:         1,
	}
}

// Available reports the invariant of spec §3:
// available ≡ (¬cancelled ∧ remaining_count > 0).
func (o *Order) Available() bool {
	return !o.Cancelled && o.Remaining > 0
}

// bidLess orders the buy side by descending price, then ascending
// rest timestamp, then ascending id (spec §4.1).
func bidLess(a, b *Order) bool {
	if a.Price != b.Price {
		return a.Price > b.Price
	}
	if a.RestTimestamp != b.RestTimestamp {
		return a.RestTimestamp < b.RestTimestamp
	}
	return a.ID < b.ID
}

// askLess orders the sell side by ascending price, then ascending
// rest timestamp, then ascending id (spec §4.1).
func askLess(a, b *Order) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	if a.RestTimestamp != b.RestTimestamp {
		return a.RestTimestamp < b.RestTimestamp
	}
	return a.ID < b.ID
}
