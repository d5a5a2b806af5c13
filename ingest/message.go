package ingest

import "matchbook/book"

// Message is the wire shape of one command arriving over Kafka: a
// SUBMIT or CANCEL tagged with the logical connection that issued it.
// ConnectionID groups commands into the same OrderRegistry the way a
// single TCP connection's command stream does for transport.Worker,
// so a CANCEL from connection 7 can never touch an order opened under
// connection 8 (spec §4.4, Scenario E) even though both arrive on the
// same Kafka partition.
type Message struct {
	ConnectionID uint64     `json:"connection_id"`
	Kind         string     `json:"kind"` // "submit" | "cancel"
	OrderID      uint64     `json:"order_id"`
	Instrument   string     `json:"instrument,omitempty"`
	Side         string     `json:"side,omitempty"` // "buy" | "sell"
	Price        int64      `json:"price,omitempty"`
	Count        int64      `json:"count,omitempty"`
}

func (m Message) side() book.Side {
	if m.Side == "sell" {
		return book.Sell
	}
	return book.Buy
}
