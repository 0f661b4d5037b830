package nats

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) string {
	t.Helper()
	s := natsserver.RunRandClientPortServer()
	t.Cleanup(s.Shutdown)
	return s.ClientURL()
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishJSON(t *testing.T) {
	client, err := NewClient(runServer(t), "test")
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.CheckConnected())

	received := make(chan *nats.Msg, 1)
	_, err = client.Subscribe("ride.status_changed", func(msg *nats.Msg) { received <- msg })
	require.NoError(t, err)

	require.NoError(t, client.PublishJSON("ride.status_changed", map[string]string{"ride_id": "r1"}))

	select {
	case msg := <-received:
		assert.JSONEq(t, `{"ride_id":"r1"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestClient_PublishJSON_MarshalError(t *testing.T) {
	client, err := NewClient(runServer(t), "test")
	require.NoError(t, err)
	defer client.Close()

	err = client.PublishJSON("x", map[string]interface{}{"bad": make(chan int)})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}

func TestConsumer_QueueGroupAndErrors(t *testing.T) {
	url := runServer(t)
	client, err := NewClient(url, "consumer")
	require.NoError(t, err)
	defer client.Close()

	var handled int32
	consumer, err := NewConsumer(client, "wallet.updated", "dispatch", func(message []byte) error {
		atomic.AddInt32(&handled, 1)
		if string(message) == "bad" {
			return errors.New("bad payload")
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, client.Publish("wallet.updated", []byte("bad")))
	require.NoError(t, client.Publish("wallet.updated", []byte(`{}`)))
	require.NoError(t, client.GetConn().Flush())

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&handled) == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, consumer.Stop())
	require.NoError(t, client.Publish("wallet.updated", []byte(`{}`)))
	require.NoError(t, client.GetConn().Flush())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&handled))
}
