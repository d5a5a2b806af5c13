package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"matchbook/broadcast"
	"matchbook/clock"
	"matchbook/engine"
	"matchbook/ingest"
	"matchbook/metrics"
	"matchbook/outbox"
	"matchbook/output"
	"matchbook/transport"
)

func main() {
	addr := flag.String("addr", ":9090", "TCP address to accept SUBMIT/CANCEL connections on")
	metricsAddr := flag.String("metrics-addr", ":9091", "address to serve /metrics on")
	outboxDir := flag.String("outbox-dir", "./outbox_data", "directory for the delivery outbox")
	kafkaBrokers := flag.String("kafka-broker", "", "Kafka broker address; broadcast/ingest disabled if empty")
	broadcastTopic := flag.String("broadcast-topic", "matchbook.events", "Kafka topic the broadcaster publishes to")
	ingestTopic := flag.String("ingest-topic", "matchbook.commands", "Kafka topic the ingest consumer reads from")
	ingestGroup := flag.String("ingest-group", "matchbook-ingest", "Kafka consumer group for the ingest consumer")
	flag.Parse()

	metrics.Register()

	// ---------------- Outbox ----------------

	box, err := outbox.Open(*outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	// ---------------- Output formatter ----------------

	var out output.Formatter = broadcast.NewOutboxFormatter(box)
	out = metrics.Wrap(out)

	// ---------------- Engine ----------------

	clk := clock.New()
	eng := engine.New(engine.NewOrderBook(), clk, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------------- Broadcast / ingest (Kafka, optional) ----------------

	var brokers []string
	if *kafkaBrokers != "" {
		brokers = []string{*kafkaBrokers}
	}

	if len(brokers) > 0 {
		bc, err := broadcast.New(box, brokers, *broadcastTopic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)

		consumer := ingest.NewConsumer(brokers, *ingestTopic, *ingestGroup, eng)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Printf("[ingest] consumer exited: %v", err)
			}
		}()
	} else {
		log.Println("[main] no --kafka-broker given; broadcast and ingest are disabled")
	}

	// ---------------- Metrics HTTP ----------------

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		log.Printf("[main] metrics listening on %s", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			log.Printf("[main] metrics server exited: %v", err)
		}
	}()

	// ---------------- Gauge refresher ----------------

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.InstrumentCount.Set(float64(len(eng.Book().Instruments())))
			if pending, err := box.PendingCount(); err != nil {
				log.Printf("[main] outbox pending count failed: %v", err)
			} else {
				metrics.OutboxDepth.Set(float64(pending))
			}
		}
	}()

	// ---------------- Transport ----------------

	log.Printf("[main] matchbook engine running on %s", *addr)
	if err := transport.ListenAndServe(*addr, eng); err != nil {
		log.Fatalf("transport server exited: %v", err)
	}
}
