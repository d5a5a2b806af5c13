// Package outbox is a durable, at-least-once delivery tracker for the
// output event stream. It is adapted from
// _examples/UmarFarooq-MP-Loki/infra/wal/exit/wal.go, which used
// cockroachdb/pebble the same way: as a small embedded KV store for
// per-record delivery state, not as an order-book recovery log.
//
// This is deliberately not a recovery mechanism for matching-engine
// state (spec.md's Non-goals exclude persistence/recovery of the
// book): it only guarantees that every event handed to Put is
// eventually published even if the broadcaster process restarts
// mid-flight, by remembering which events have not yet been
// acknowledged as sent.
package outbox

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// State is a record's delivery status.
type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

// Record is one tracked event awaiting or having completed delivery.
type Record struct {
	Seq     uint64
	State   State
	Payload []byte
}

// encoding: [state:1][payload...]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+len(r.Payload))
	buf[0] = byte(r.State)
	copy(buf[1:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (Record, error) {
	if len(b) < 1 {
		return Record{}, errors.New("outbox: record too short")
	}
	payload := make([]byte, len(b)-1)
	copy(payload, b[1:])
	return Record{Seq: seq, State: State(b[0]), Payload: payload}, nil
}

// Outbox is a pebble-backed store of pending and delivered events,
// keyed by a monotonic sequence number.
type Outbox struct {
	db *pebble.DB
}

// Open opens (creating if necessary) the outbox at dir.
func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{DisableWAL: false})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

// Close releases the underlying pebble database.
func (o *Outbox) Close() error {
	return o.db.Close()
}

// Put records a new, not-yet-sent event.
func (o *Outbox) Put(seq uint64, payload []byte) error {
	return o.db.Set(keyFor(seq), encodeRecord(Record{Seq: seq, State: StateNew, Payload: payload}), pebble.Sync)
}

// MarkSent transitions seq from NEW to SENT, idempotently.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.setState(seq, StateSent)
}

// MarkAcked transitions seq to ACKED, idempotently.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.setState(seq, StateAcked)
}

func (o *Outbox) setState(seq uint64, state State) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the current record for seq.
func (o *Outbox) Get(seq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	return decodeRecord(seq, val)
}

// ScanPending calls fn once per record not yet ACKED, in ascending
// sequence order, used by the broadcaster to drain undelivered
// events after a restart.
func (o *Outbox) ScanPending(fn func(Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// PendingCount returns the number of records not yet ACKED, for
// metrics reporting.
func (o *Outbox) PendingCount() (int, error) {
	n := 0
	err := o.ScanPending(func(Record) error {
		n++
		return nil
	})
	return n, err
}

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("evt/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(b[len("evt/"):]), "%d", &seq)
	return seq, err
}
