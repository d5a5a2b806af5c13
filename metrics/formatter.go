package metrics

import (
	"strconv"

	"matchbook/output"
)

// InstrumentedFormatter wraps another output.Formatter, incrementing
// the package's counters before delegating. The engine never knows
// it's there: this is the same wrap-and-delegate pattern the monitored
// code elsewhere in the corpus uses for HTTP handlers, applied to the
// Formatter interface instead.
type InstrumentedFormatter struct {
	next output.Formatter
}

// Wrap returns a Formatter that records metrics for every event before
// forwarding it to next.
func Wrap(next output.Formatter) *InstrumentedFormatter {
	return &InstrumentedFormatter{next: next}
}

func (f *InstrumentedFormatter) OrderAdded(orderID uint64, instrument string, price int64, count int64, isSell bool, timestamp uint64) {
	OrdersRested.WithLabelValues(instrument).Inc()
	f.next.OrderAdded(orderID, instrument, price, count, isSell, timestamp)
}

func (f *InstrumentedFormatter) OrderExecuted(restingID, activeID uint64, executionID uint64, price int64, qty int64, timestamp uint64) {
	Executions.Inc()
	f.next.OrderExecuted(restingID, activeID, executionID, price, qty, timestamp)
}

func (f *InstrumentedFormatter) OrderDeleted(orderID uint64, accepted bool, timestamp uint64) {
	OrdersCancelled.WithLabelValues(strconv.FormatBool(accepted)).Inc()
	f.next.OrderDeleted(orderID, accepted, timestamp)
}

var _ output.Formatter = (*InstrumentedFormatter)(nil)
