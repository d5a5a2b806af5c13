// Package output defines the OutputFormatter contract the matching
// engine drives (spec §6) and a default, goroutine-safe implementation
// of it. The formatter is the only externally consumed collaborator
// on the hot path: the engine only needs the three call signatures
// below; how they are rendered or shipped downstream is this
// package's concern.
package output

// Formatter is invoked exactly once per event, in the order the
// underlying operation occurred under the owning instrument's mutex
// (spec §5, §6). Implementations must serialize concurrent emissions
// from different instrument goroutines themselves.
type Formatter interface {
	// OrderAdded is emitted once per resting insertion.
	OrderAdded(orderID uint64, instrument string, price int64, count int64, isSell bool, timestamp uint64)
	// OrderExecuted is emitted once per execution pair. executionID is
	// the resting order's execution counter before increment.
	OrderExecuted(restingID, activeID uint64, executionID uint64, price int64, qty int64, timestamp uint64)
	// OrderDeleted is emitted once per cancel command.
	OrderDeleted(orderID uint64, accepted bool, timestamp uint64)
}
