package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNatsConn(t *testing.T) *nats.Conn {
	s := natsserver.RunRandClientPortServer()
	t.Cleanup(s.Shutdown)

	nc, err := nats.Connect(s.ClientURL())
	require.NoError(t, err, "Failed to connect to NATS server")
	t.Cleanup(nc.Close)
	return nc
}

func TestPublishRideStatusChanged(t *testing.T) {
	nc := setupNatsConn(t)
	gw := NewRideGW(nc)

	sub, err := nc.SubscribeSync(constants.SubjectRideStatusChanged)
	require.NoError(t, err)

	fare := 12.4
	msg := &models.RideStatusMessage{
		RideID:     "ride-1",
		RiderID:    "rider-1",
		DriverID:   "driver-1",
		From:       models.RideStatusInProgress,
		Status:     models.RideStatusCompleted,
		FinalFare:  &fare,
		DistanceKm: 1.64,
		ChangedAt:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, gw.PublishRideStatusChanged(context.Background(), msg))

	received, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var got models.RideStatusMessage
	require.NoError(t, json.Unmarshal(received.Data, &got))
	assert.Equal(t, *msg, got)
}

func TestPublishRideStatusChanged_ClosedConnection(t *testing.T) {
	nc := setupNatsConn(t)
	gw := NewRideGW(nc)
	nc.Close()

	err := gw.PublishRideStatusChanged(context.Background(), &models.RideStatusMessage{RideID: "ride-1"})
	assert.Error(t, err)
}
