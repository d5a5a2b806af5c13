package engine

import (
	"matchbook/book"
	"matchbook/registry"
)

// OrderBook is the process-wide CHM of symbol -> *book.Instrument
// (spec §3, §4.2). It is initialized once before accepting
// connections and passed explicitly into the MatchingEngine rather
// than reached for through package-level globals.
type OrderBook struct {
	instruments *registry.Map[*book.Instrument]
}

// NewOrderBook constructs an empty, process-wide instrument registry.
func NewOrderBook() *OrderBook {
	return &OrderBook{instruments: registry.New[*book.Instrument]()}
}

// InstrumentFor returns the stable Instrument for symbol, creating it
// on first use.
func (ob *OrderBook) InstrumentFor(symbol string) *book.Instrument {
	return ob.instruments.GetOrInsert(symbol, func() *book.Instrument {
		return book.NewInstrument(symbol)
	})
}

// Instruments returns every instrument created so far, for snapshot
// and metrics queries. The returned slice is a point-in-time copy.
func (ob *OrderBook) Instruments() []*book.Instrument {
	return ob.instruments.Values()
}
