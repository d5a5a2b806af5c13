package transport

import (
	"log"
	"net"

	"matchbook/engine"
)

// ListenAndServe accepts connections on addr and spawns a Worker per
// connection until the listener is closed or accept fails fatally.
func ListenAndServe(addr string, eng *engine.MatchingEngine) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	log.Printf("[transport] listening on %s", addr)
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go NewWorker(conn, eng).Serve()
	}
}
