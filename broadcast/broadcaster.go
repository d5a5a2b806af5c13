// Package broadcast drains the outbox to a Kafka topic. It is
// adapted from
// _examples/UmarFarooq-MP-Loki/jobs/broadcaster/broadcaster.go, fixing
// that file's mismatch against the real ExitWAL API (it calls
// ScanPending/MarkSent/MarkAcked signatures the underlying type never
// defined) by driving the outbox package's actual methods.
package broadcast

import (
	"context"
	"log"
	"time"

	"github.com/IBM/sarama"

	"matchbook/outbox"
)

// Broadcaster periodically drains box and publishes every pending
// record to a Kafka topic with sarama, marking each ACKED only after
// the broker has confirmed it.
type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// New builds a Broadcaster against brokers, publishing to topic.
func New(box *outbox.Outbox, brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
	}, nil
}

// Run drains the outbox on a fixed interval until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcast] started")
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.drainOnce(); err != nil {
				log.Printf("[broadcast] drain error: %v", err)
			}
		}
	}
}

func (b *Broadcaster) drainOnce() error {
	return b.box.ScanPending(func(rec outbox.Record) error {
		if rec.State == outbox.StateNew {
			if err := b.box.MarkSent(rec.Seq); err != nil {
				return err
			}
		}

		_, _, err := b.producer.SendMessage(&sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		})
		if err != nil {
			// Leave the record SENT; the next drain retries the send
			// rather than re-queuing from NEW.
			return nil
		}

		return b.box.MarkAcked(rec.Seq)
	})
}

// Close releases the underlying producer.
func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
