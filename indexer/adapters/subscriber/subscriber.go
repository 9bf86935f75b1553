package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"keyword-index/indexer/core"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// QueueGroup spreads ingest messages across indexer replicas.
const QueueGroup = "indexer"

// Reply is sent back when an ingest message carries a reply subject.
type Reply struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

type NatsSubscriber struct {
	conn    *nats.Conn
	sub     *nats.Subscription
	handler core.DocumentHandler
	timeout time.Duration
	log     *slog.Logger
}

func NewNatsSubscriber(
	address, subj string, handler core.DocumentHandler, timeout time.Duration, log *slog.Logger,
) (*NatsSubscriber, error) {
	nc, err := nats.Connect(address,
		nats.Name("Indexer ingest"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("connection to NATS closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connect to broker: %w", err)
	}

	ns := &NatsSubscriber{
		conn:    nc,
		handler: handler,
		timeout: timeout,
		log:     log,
	}
	ns.sub, err = nc.QueueSubscribe(subj, QueueGroup, ns.handle)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to subscribe on subject %s: %w", subj, err)
	}
	log.Debug("connected to broker as subscriber", "address", address, "subject", subj, "url", nc.ConnectedUrl())
	return ns, nil
}

func (ns *NatsSubscriber) handle(msg *nats.Msg) {
	var doc core.Document
	err := json.Unmarshal(msg.Data, &doc)
	if err != nil {
		err = fmt.Errorf("failed to decode document: %w", err)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), ns.timeout)
		err = ns.handler.HandleDocument(ctx, doc)
		cancel()
	}

	if err != nil {
		ns.log.Error("failed to handle document", "subject", msg.Subject, "id", doc.ID, "error", err)
	} else {
		ns.log.Debug("document indexed", "subject", msg.Subject, "id", doc.ID)
	}

	if msg.Reply == "" {
		return
	}
	reply := Reply{ID: doc.ID}
	if err != nil {
		reply.Error = err.Error()
	}
	data, _ := json.Marshal(reply)
	if err := msg.Respond(data); err != nil {
		ns.log.Warn("failed to reply", "subject", msg.Reply, "error", err)
	}
}

func (ns *NatsSubscriber) Unsubscribe() {
	if err := ns.sub.Unsubscribe(); err != nil {
		ns.log.Warn("failed to unsubscribe", "subject", ns.sub.Subject)
	}
	ns.conn.Close()
}
