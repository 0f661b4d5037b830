package usecase

import (
	"context"
	"sync"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/notify"
	"github.com/piresc/dispatch/services/notify/registry"
)

// Notifier implements notify.NotifyUC on top of the subscription registry.
// Delivery is best effort: a connection whose queue is full misses the event.
type Notifier struct {
	registry *registry.Registry
	drivers  notify.DriverResolver

	mu    sync.RWMutex
	sinks map[string]notify.Sink
}

// NewNotifier creates a notifier over reg. drivers resolves PublishToDriver references.
func NewNotifier(reg *registry.Registry, drivers notify.DriverResolver) *Notifier {
	return &Notifier{
		registry: reg,
		drivers:  drivers,
		sinks:    make(map[string]notify.Sink),
	}
}

// Attach registers a connection so that it can receive events
func (n *Notifier) Attach(sink notify.Sink) {
	n.mu.Lock()
	n.sinks[sink.ConnectionID()] = sink
	n.mu.Unlock()
}

// Detach forgets a connection and returns the channels it was subscribed to
func (n *Notifier) Detach(connID string) []models.ChannelKey {
	n.mu.Lock()
	delete(n.sinks, connID)
	n.mu.Unlock()
	return n.registry.DropConnection(connID)
}

func (n *Notifier) Subscribe(connID string, key models.ChannelKey) bool {
	return n.registry.Subscribe(connID, key)
}

func (n *Notifier) Unsubscribe(connID string, key models.ChannelKey) bool {
	return n.registry.Unsubscribe(connID, key)
}

func (n *Notifier) HasMembers(key models.ChannelKey) bool {
	return n.registry.HasMembers(key)
}

// Publish delivers event to every member of key and returns how many accepted it
func (n *Notifier) Publish(ctx context.Context, key models.ChannelKey, event models.Event) int {
	return n.publish(event, key)
}

// PublishToUser delivers event on the personal channel of userID
func (n *Notifier) PublishToUser(ctx context.Context, userID string, event models.Event) {
	if userID == "" {
		return
	}
	n.publish(event, models.UserChannel(userID))
}

// PublishToDriver resolves ref to an account before delivering
func (n *Notifier) PublishToDriver(ctx context.Context, ref models.DriverRef, event models.Event) error {
	accountID, err := n.drivers.ResolveAccountID(ctx, ref)
	if err != nil {
		return err
	}
	n.publish(event, models.UserChannel(accountID))
	return nil
}

// PublishToRide reaches every ride channel of the ride and both parties' personal channels.
// A connection subscribed to several of them receives the event once.
func (n *Notifier) PublishToRide(ctx context.Context, ride *models.Ride, event models.Event) {
	keys := n.registry.RideChannels(ride.ID)
	keys = append(keys, models.UserChannel(ride.RiderID))
	if ride.DriverID != "" {
		keys = append(keys, models.UserChannel(ride.DriverID))
	}
	n.publish(event, keys...)
}

// PublishToTopic delivers event to the topic channel of userID
func (n *Notifier) PublishToTopic(ctx context.Context, topic, userID string, event models.Event) {
	n.publish(event, models.TopicChannel(topic, userID))
}

func (n *Notifier) publish(event models.Event, keys ...models.ChannelKey) int {
	seen := make(map[string]struct{})
	targets := make([]string, 0)
	for _, key := range keys {
		for _, connID := range n.registry.ChannelMembers(key) {
			if _, dup := seen[connID]; dup {
				continue
			}
			seen[connID] = struct{}{}
			targets = append(targets, connID)
		}
	}
	if len(targets) == 0 {
		return 0
	}

	data, err := models.EncodeEvent(event)
	if err != nil {
		logger.Error("Failed to encode event",
			logger.String("event", event.EventName()),
			logger.Err(err))
		return 0
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	delivered := 0
	for _, connID := range targets {
		sink, ok := n.sinks[connID]
		if !ok {
			continue
		}
		if !sink.Send(data) {
			logger.Debug("Dropped event for slow connection",
				logger.String("event", event.EventName()),
				logger.String("connection_id", connID))
			continue
		}
		delivered++
	}
	return delivered
}
