package nats

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/services/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T, client *natspkg.Client) (*PaymentsHandler, *mocks.MockNotifyUC, *mocks.MockDashboardUC) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifyUC(ctrl)
	dashboards := mocks.NewMockDashboardUC(ctrl)
	return NewPaymentsHandler(client, notifier, dashboards, func() time.Time { return fixedNow }), notifier, dashboards
}

func TestHandleWalletUpdated(t *testing.T) {
	h, notifier, _ := newTestHandler(t, nil)

	notifier.EXPECT().PublishToTopic(gomock.Any(), models.TopicWallet, "rider-1", gomock.Any()).
		Do(func(_ context.Context, _, _ string, event models.Event) {
			update, ok := event.(models.WalletUpdate)
			require.True(t, ok)
			assert.JSONEq(t, `{"balance":12.5}`, string(update.Wallet))
			assert.Equal(t, fixedNow, update.Timestamp)
		})

	require.NoError(t, h.handleWalletUpdated([]byte(`{"user_id":"rider-1","wallet":{"balance":12.5}}`)))
}

func TestHandleWalletUpdated_Invalid(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)

	assert.Error(t, h.handleWalletUpdated([]byte(`not json`)))
	assert.Error(t, h.handleWalletUpdated([]byte(`{"wallet":{}}`)))
}

func TestHandleEarningsUpdated(t *testing.T) {
	h, notifier, dashboards := newTestHandler(t, nil)
	at := fixedNow.Add(-time.Minute)

	dashboards.EXPECT().RecordEarnings(models.EarningsSnapshot{
		UserID: "driver-1", Today: 42.5, Week: 310, Currency: "GBP", CompletedRides: 7, UpdatedAt: at,
	})
	notifier.EXPECT().Publish(gomock.Any(), models.DashboardChannel("driver-1", models.RoleDriver), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ChannelKey, event models.Event) int {
			update, ok := event.(models.DashboardUpdate)
			require.True(t, ok)
			assert.Equal(t, models.DashboardEarnings, update.UpdateType())
			return 1
		})
	notifier.EXPECT().PublishToTopic(gomock.Any(), models.TopicEarnings, "driver-1", gomock.Any())

	body := `{"driver_id":"driver-1","today":42.5,"week":310,"currency":"GBP","completed_rides":7,"updated_at":"` +
		at.Format(time.RFC3339) + `"}`
	require.NoError(t, h.handleEarningsUpdated([]byte(body)))
}

func TestHandleEarningsUpdated_MissingDriver(t *testing.T) {
	h, _, _ := newTestHandler(t, nil)
	assert.Error(t, h.handleEarningsUpdated([]byte(`{"today":1}`)))
}

func TestPaymentsHandler_ConsumesFromNATS(t *testing.T) {
	s := natsserver.RunRandClientPortServer()
	t.Cleanup(s.Shutdown)

	client, err := natspkg.NewClient(s.ClientURL(), "payments-test")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	h, notifier, _ := newTestHandler(t, client)
	delivered := make(chan string, 1)
	notifier.EXPECT().PublishToTopic(gomock.Any(), models.TopicWallet, "rider-1", gomock.Any()).
		Do(func(_ context.Context, _, userID string, _ models.Event) { delivered <- userID })

	require.NoError(t, h.Start())
	t.Cleanup(h.Stop)

	require.NoError(t, client.PublishJSON(constants.SubjectWalletUpdated, models.WalletUpdatedMessage{
		UserID: "rider-1", UpdatedAt: fixedNow,
	}))
	require.NoError(t, client.GetConn().Flush())

	select {
	case got := <-delivered:
		assert.Equal(t, "rider-1", got)
	case <-time.After(2 * time.Second):
		t.Fatal("wallet update was not consumed")
	}
}
