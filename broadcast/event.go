package broadcast

import "encoding/json"

// Event is the wire shape for every output event shipped to Kafka. It
// mirrors _examples/UmarFarooq-MP-Loki/jobs/broadcaster/broadcaster.go's
// Event struct, extended with the fields OrderAdded/OrderExecuted/
// OrderDeleted actually carry.
type Event struct {
	V    int    `json:"v"`
	Type string `json:"type"`

	OrderID    uint64 `json:"order_id,omitempty"`
	Instrument string `json:"instrument,omitempty"`
	Price      int64  `json:"price,omitempty"`
	Count      int64  `json:"count,omitempty"`
	IsSell     bool   `json:"is_sell,omitempty"`

	RestingID   uint64 `json:"resting_id,omitempty"`
	ActiveID    uint64 `json:"active_id,omitempty"`
	ExecutionID uint64 `json:"execution_id,omitempty"`
	Qty         int64  `json:"qty,omitempty"`

	Accepted bool `json:"accepted,omitempty"`

	Timestamp uint64 `json:"timestamp"`
}

const eventVersion = 1

func encode(e Event) []byte {
	e.V = eventVersion
	b, err := json.Marshal(e)
	if err != nil {
		// Event contains only primitive fields; Marshal cannot fail.
		panic(err)
	}
	return b
}
