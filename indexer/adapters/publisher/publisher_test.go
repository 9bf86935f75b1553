package publisher_test

import (
	"encoding/json"
	"keyword-index/indexer/adapters/publisher"
	"keyword-index/indexer/core"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

const subject = "keywords.events"

func runNATSServer(t *testing.T) *server.Server {
	t.Helper()

	s, err := server.NewServer(&server.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	})
	require.NoError(t, err)

	go s.Start()
	if !s.ReadyForConnections(5 * time.Second) {
		s.Shutdown()
		t.Fatal("nats server not ready")
	}
	t.Cleanup(s.Shutdown)
	return s
}

func TestPublish(t *testing.T) {
	s := runNATSServer(t)
	url := "nats://" + s.Addr().String()

	p, err := publisher.NewNatsPublisher(url, subject, slog.Default())
	require.NoError(t, err)
	t.Cleanup(p.Close)

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	msgCh := make(chan *nats.Msg, 2)
	sub, err := nc.ChanSubscribe(subject, msgCh)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })
	require.NoError(t, nc.FlushTimeout(2*time.Second))

	for _, event := range []core.EventType{core.EventIndexed, core.EventReset} {
		require.NoError(t, p.Publish(event))

		select {
		case msg := <-msgCh:
			var got publisher.Message
			require.NoError(t, json.Unmarshal(msg.Data, &got))
			require.Equal(t, event, got.Event)
			require.False(t, got.At.IsZero())
		case <-time.After(5 * time.Second):
			t.Fatalf("did not receive %s event", event)
		}
	}
}

func TestPublishClosed(t *testing.T) {
	s := runNATSServer(t)

	p, err := publisher.NewNatsPublisher("nats://"+s.Addr().String(), subject, slog.Default())
	require.NoError(t, err)
	p.Close()

	require.Error(t, p.Publish(core.EventIndexed))
}
