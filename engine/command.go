package engine

import "matchbook/book"

// CommandKind distinguishes the two client-visible operations (spec
// §6): SUBMIT and CANCEL. read_command's EOF/ERROR outcomes are a
// ConnectionWorker concern, not a command.
type CommandKind uint8

const (
	Submit CommandKind = iota
	Cancel
)

// Command is the decoded form of one line from read_command, ready
// for MatchingEngine.Dispatch. Side and Price/Count are meaningful
// only for Submit.
type Command struct {
	Kind       CommandKind
	OrderID    uint64
	Instrument string
	Side       book.Side
	Price      int64
	Count      int64
}

// Dispatch routes a decoded Command to Submit or Cancel on behalf of
// conn, the issuing connection's registry.
func (e *MatchingEngine) Dispatch(conn *OrderRegistry, cmd Command) {
	switch cmd.Kind {
	case Submit:
		e.Submit(conn, cmd.OrderID, cmd.Instrument, cmd.Side, cmd.Price, cmd.Count)
	case Cancel:
		e.Cancel(conn, cmd.OrderID)
	}
}
