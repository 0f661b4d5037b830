package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/notify/mocks"
	"github.com/piresc/dispatch/services/notify/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records frames and can simulate a full queue
type fakeSink struct {
	id   string
	full bool

	mu     sync.Mutex
	frames [][]byte
}

func (s *fakeSink) ConnectionID() string { return s.id }

func (s *fakeSink) Send(data []byte) bool {
	if s.full {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, data)
	return true
}

func (s *fakeSink) events(t *testing.T) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.frames))
	for _, f := range s.frames {
		var msg models.WSMessage
		require.NoError(t, json.Unmarshal(f, &msg))
		out = append(out, msg.Event)
	}
	return out
}

func newTestNotifier(t *testing.T) (*Notifier, *mocks.MockDriverResolver) {
	ctrl := gomock.NewController(t)
	drivers := mocks.NewMockDriverResolver(ctrl)
	return NewNotifier(registry.New(), drivers), drivers
}

func attach(n *Notifier, sink *fakeSink, keys ...models.ChannelKey) {
	n.Attach(sink)
	for _, k := range keys {
		n.Subscribe(sink.id, k)
	}
}

var pong = models.Pong{Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

func TestNotifier_PublishDeliversToMembers(t *testing.T) {
	n, _ := newTestNotifier(t)
	ctx := context.Background()
	phone := &fakeSink{id: "phone"}
	tablet := &fakeSink{id: "tablet"}
	other := &fakeSink{id: "other"}
	attach(n, phone, models.UserChannel("rider-1"))
	attach(n, tablet, models.UserChannel("rider-1"))
	attach(n, other, models.UserChannel("rider-2"))

	assert.Equal(t, 2, n.Publish(ctx, models.UserChannel("rider-1"), pong))
	assert.Equal(t, []string{constants.EventPong}, phone.events(t))
	assert.Equal(t, []string{constants.EventPong}, tablet.events(t))
	assert.Empty(t, other.events(t))

	assert.Equal(t, 0, n.Publish(ctx, models.UserChannel("nobody"), pong))
}

func TestNotifier_FullQueueDropsWithoutBlocking(t *testing.T) {
	n, _ := newTestNotifier(t)
	slow := &fakeSink{id: "slow", full: true}
	fast := &fakeSink{id: "fast"}
	attach(n, slow, models.UserChannel("driver-1"))
	attach(n, fast, models.UserChannel("driver-1"))

	assert.Equal(t, 1, n.Publish(context.Background(), models.UserChannel("driver-1"), pong))
	assert.Len(t, fast.events(t), 1)
}

func TestNotifier_PublishToRideDeduplicates(t *testing.T) {
	n, _ := newTestNotifier(t)
	ride := &models.Ride{ID: "ride-1", RiderID: "rider-1", DriverID: "driver-1", Status: models.RideStatusAccepted}

	// the rider's phone watches the ride and its personal channel
	riderPhone := &fakeSink{id: "rider-phone"}
	attach(n, riderPhone, models.UserChannel("rider-1"), models.RideChannel("ride-1", "rider-1"))
	driverApp := &fakeSink{id: "driver-app"}
	attach(n, driverApp, models.UserChannel("driver-1"))
	watcher := &fakeSink{id: "watcher"}
	attach(n, watcher, models.RideChannel("ride-1", "ops-1"))
	stranger := &fakeSink{id: "stranger"}
	attach(n, stranger, models.RideChannel("ride-2", "rider-1"))

	n.PublishToRide(context.Background(), ride, models.NewRideStatusChange(ride, models.RideStatusAssigned, pong.Timestamp))

	assert.Equal(t, []string{constants.EventRideStatusChange}, riderPhone.events(t))
	assert.Len(t, driverApp.events(t), 1)
	assert.Len(t, watcher.events(t), 1)
	assert.Empty(t, stranger.events(t))
}

func TestNotifier_PublishToDriverResolvesIdentity(t *testing.T) {
	n, drivers := newTestNotifier(t)
	ctx := context.Background()
	app := &fakeSink{id: "app"}
	attach(n, app, models.UserChannel("acct-7"))

	drivers.EXPECT().ResolveAccountID(gomock.Any(), models.ProfileRef("prof-7")).Return("acct-7", nil)
	drivers.EXPECT().ResolveAccountID(gomock.Any(), models.ProfileRef("ghost")).Return("", apperrors.ErrUnknownDriver)

	require.NoError(t, n.PublishToDriver(ctx, models.ProfileRef("prof-7"), pong))
	assert.Len(t, app.events(t), 1)

	assert.ErrorIs(t, n.PublishToDriver(ctx, models.ProfileRef("ghost"), pong), apperrors.ErrUnknownDriver)
	assert.Len(t, app.events(t), 1)
}

func TestNotifier_DetachStopsDelivery(t *testing.T) {
	n, _ := newTestNotifier(t)
	ctx := context.Background()
	app := &fakeSink{id: "app"}
	attach(n, app, models.UserChannel("rider-1"), models.TopicChannel(models.TopicWallet, "rider-1"))

	left := n.Detach("app")
	assert.Len(t, left, 2)
	assert.False(t, n.HasMembers(models.UserChannel("rider-1")))

	n.PublishToUser(ctx, "rider-1", pong)
	n.PublishToTopic(ctx, models.TopicWallet, "rider-1", pong)
	assert.Empty(t, app.events(t))
}

func TestNotifier_SubscribedButNotAttached(t *testing.T) {
	n, _ := newTestNotifier(t)
	n.Subscribe("ghost", models.UserChannel("rider-1"))

	assert.Equal(t, 0, n.Publish(context.Background(), models.UserChannel("rider-1"), pong))
}
