// Package transport is the minimal ConnectionWorker spec.md §6 treats
// as an external collaborator: it frames commands off a TCP
// connection and dispatches them into a MatchingEngine. There is no
// wire-format example to ground on in the retrieved pack (the
// teacher's api/grpc and api/grpcserver packages depend on a
// generated `pb` package with no corresponding .proto file anywhere
// in the pack), so this is a plain newline-delimited text protocol
// over net.Conn, following _examples/original_source/engine.cpp's
// read-one-line-per-command loop and its "log, then exit the worker"
// handling of read errors.
package transport

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"

	"matchbook/book"
	"matchbook/engine"
)

// Worker owns one accepted connection: its own OrderRegistry, and a
// line-oriented read loop dispatching into the shared MatchingEngine.
// Commands are:
//
//	SUBMIT <id> <instrument> <buy|sell> <price> <count>
//	CANCEL <id>
//
// Any other line, or a line that fails to parse, terminates the
// worker after logging why (spec §7: read errors terminate only the
// affected worker).
type Worker struct {
	conn   net.Conn
	engine *engine.MatchingEngine
	orders *engine.OrderRegistry
}

// NewWorker wraps an accepted connection.
func NewWorker(conn net.Conn, eng *engine.MatchingEngine) *Worker {
	return &Worker{
		conn:   conn,
		engine: eng,
		orders: engine.NewOrderRegistry(),
	}
}

// Serve runs the read loop until EOF or a read error, then closes the
// connection. Call in its own goroutine per accepted connection.
func (w *Worker) Serve() {
	defer w.conn.Close()

	scanner := bufio.NewScanner(w.conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := w.dispatch(line); err != nil {
			log.Printf("[transport] %s: %v", w.conn.RemoteAddr(), err)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[transport] %s: read error: %v", w.conn.RemoteAddr(), err)
	}
}

func (w *Worker) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToUpper(fields[0]) {
	case "SUBMIT":
		return w.dispatchSubmit(fields[1:])
	case "CANCEL":
		return w.dispatchCancel(fields[1:])
	default:
		return fmt.Errorf("unrecognized command %q", fields[0])
	}
}

func (w *Worker) dispatchSubmit(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("SUBMIT wants 5 fields, got %d", len(args))
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id: %w", err)
	}
	instrument := args[1]

	var side book.Side
	switch strings.ToLower(args[2]) {
	case "buy":
		side = book.Buy
	case "sell":
		side = book.Sell
	default:
		return fmt.Errorf("side must be buy or sell, got %q", args[2])
	}

	price, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("bad price: %w", err)
	}
	count, err := strconv.ParseInt(args[4], 10, 64)
	if err != nil {
		return fmt.Errorf("bad count: %w", err)
	}
	w.engine.Dispatch(w.orders, engine.Command{
		Kind:       engine.Submit,
		OrderID:    id,
		Instrument: instrument,
		Side:       side,
		Price:      price,
		Count:      count,
	})
	return nil
}

func (w *Worker) dispatchCancel(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("CANCEL wants 1 field, got %d", len(args))
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad order id: %w", err)
	}
	w.engine.Dispatch(w.orders, engine.Command{Kind: engine.Cancel, OrderID: id})
	return nil
}
