//go:build integration

package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/baechuer/leads-api/internal/application/leadimport"
)

func TestPublisher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()

	rabbitC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-management",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rabbitC.Terminate(ctx) })

	host, err := rabbitC.Host(ctx)
	require.NoError(t, err)
	port, err := rabbitC.MappedPort(ctx, "5672")
	require.NoError(t, err)
	url := "amqp://guest:guest@" + host + ":" + port.Port() + "/"

	p, err := NewPublisher(url, "test.leads")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	// bind a queue so the event can be read back
	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, RoutingKeyLeadsImported, "test.leads", false, nil))
	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	ev := leadimport.ImportedEvent{
		Processed:  2,
		Created:    2,
		Failed:     1,
		Filename:   "leads.csv",
		UserEmail:  "owner@x.co",
		ImportedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}
	require.NoError(t, p.PublishLeadsImported(ctx, ev))

	select {
	case m := <-msgs:
		assert.Equal(t, "application/json", m.ContentType)
		var got map[string]any
		require.NoError(t, json.Unmarshal(m.Body, &got))
		assert.Equal(t, "leads.csv", got["filename"])
		assert.Equal(t, "owner@x.co", got["user_email"])
		assert.EqualValues(t, 1, got["failed"])
		assert.Equal(t, "2024-05-06T07:08:09Z", got["imported_at"])
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}

	// the channel stays usable for later confirms
	require.NoError(t, p.PublishLeadsImported(ctx, leadimport.ImportedEvent{}))
}
