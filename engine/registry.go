package engine

import "matchbook/book"

// OrderRegistry is the per-connection map from a client-scoped
// order_id to the order it submitted, used to authorize cancels
// (spec §3). It is thread-confined to the connection's own worker and
// needs no internal synchronization.
type OrderRegistry struct {
	orders map[uint64]*book.Order
}

// NewOrderRegistry returns an empty registry for one connection.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{orders: make(map[uint64]*book.Order)}
}

// Record stores the order this connection just submitted.
func (r *OrderRegistry) Record(o *book.Order) {
	r.orders[o.ID] = o
}

// Lookup returns the order for id and true if this connection
// submitted it, or nil and false otherwise.
func (r *OrderRegistry) Lookup(id uint64) (*book.Order, bool) {
	o, ok := r.orders[id]
	return o, ok
}
