// Package ingest is a Kafka-sourced alternative to a direct TCP
// ConnectionWorker: it decodes SUBMIT/CANCEL commands from a topic
// instead of from a framed socket, and drives the same
// engine.MatchingEngine. It is grounded on the consumer-side use of
// github.com/segmentio/kafka-go in
// _examples/UmarFarooq-MP-Loki/infra/kafka/producer.go, which used the
// package's writer half for the symmetrical producer path.
package ingest

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/segmentio/kafka-go"

	"matchbook/engine"
	"matchbook/registry"
)

// Consumer reads commands from a Kafka topic and dispatches them
// against a MatchingEngine, maintaining one OrderRegistry per
// ConnectionID for the lifetime of the process.
type Consumer struct {
	reader      *kafka.Reader
	engine      *engine.MatchingEngine
	connections *registry.Map[*engine.OrderRegistry]
}

// NewConsumer builds a Consumer reading group from brokers/topic and
// dispatching decoded commands into eng.
func NewConsumer(brokers []string, topic, group string, eng *engine.MatchingEngine) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
	return &Consumer{
		reader:      reader,
		engine:      eng,
		connections: registry.New[*engine.OrderRegistry](),
	}
}

// Run reads and dispatches messages until ctx is cancelled or the
// reader returns a fatal error.
func (c *Consumer) Run(ctx context.Context) error {
	log.Println("[ingest] consumer started")
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.dispatch(msg)
	}
}

func (c *Consumer) dispatch(raw kafka.Message) {
	var m Message
	if err := json.Unmarshal(raw.Value, &m); err != nil {
		log.Printf("[ingest] dropping malformed message: %v", err)
		return
	}

	conn := c.connections.GetOrInsert(connKey(m.ConnectionID), engine.NewOrderRegistry)

	switch m.Kind {
	case "submit":
		c.engine.Dispatch(conn, engine.Command{
			Kind:       engine.Submit,
			OrderID:    m.OrderID,
			Instrument: m.Instrument,
			Side:       m.side(),
			Price:      m.Price,
			Count:      m.Count,
		})
	case "cancel":
		c.engine.Dispatch(conn, engine.Command{Kind: engine.Cancel, OrderID: m.OrderID})
	default:
		log.Printf("[ingest] unknown command kind %q", m.Kind)
	}
}

func connKey(id uint64) string {
	return "conn/" + strconv.FormatUint(id, 10)
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
