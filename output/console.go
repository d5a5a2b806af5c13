package output

import (
	"log"
	"sync"
)

// ConsoleFormatter logs each event with log.Printf, serialized by a
// single mutex so concurrent instrument goroutines never interleave
// partial lines, matching the "[component] message" log style used
// throughout the teacher's gRPC and broadcaster code.
type ConsoleFormatter struct {
	mu sync.Mutex
}

// NewConsoleFormatter returns a ready-to-use ConsoleFormatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

func (f *ConsoleFormatter) OrderAdded(orderID uint64, instrument string, price int64, count int64, isSell bool, timestamp uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	side := "B"
	if isSell {
		side = "S"
	}
	log.Printf("[engine] ADD %d %s %s %d %d %d", orderID, instrument, side, price, count, timestamp)
}

func (f *ConsoleFormatter) OrderExecuted(restingID, activeID uint64, executionID uint64, price int64, qty int64, timestamp uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.Printf("[engine] EXEC %d %d %d %d %d %d", restingID, activeID, executionID, price, qty, timestamp)
}

func (f *ConsoleFormatter) OrderDeleted(orderID uint64, accepted bool, timestamp uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.Printf("[engine] DELETE %d %v %d", orderID, accepted, timestamp)
}
