package publisher

import (
	"encoding/json"
	"fmt"
	"keyword-index/indexer/core"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Message is the payload of every event published on the events subject.
type Message struct {
	Event core.EventType `json:"event"`
	At    time.Time      `json:"at"`
}

type NatsPublisher struct {
	subj string
	conn *nats.Conn
	log  *slog.Logger
}

func NewNatsPublisher(address, subj string, log *slog.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(address,
		nats.Name("Indexer events"),
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
	log.Debug("connected to broker as publisher", "address", address, "subject", subj, "url", nc.ConnectedUrl())
	return &NatsPublisher{
		subj: subj,
		conn: nc,
		log:  log,
	}, nil
}

func (np *NatsPublisher) Close() {
	np.conn.Close()
}

func (np *NatsPublisher) Publish(event core.EventType) error {
	data, err := json.Marshal(Message{Event: event, At: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := np.conn.Publish(np.subj, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := np.conn.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	np.log.Debug("message published successfully", "subject", np.subj, "event", event)
	return nil
}
