package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/services/notify"
)

// PaymentsHandler relays wallet and earnings changes from the payments service to clients
type PaymentsHandler struct {
	client     *natspkg.Client
	notifier   notify.NotifyUC
	dashboards notify.DashboardUC
	now        models.Clock
	consumers  []*natspkg.Consumer
}

// NewPaymentsHandler creates the payments consumer
func NewPaymentsHandler(client *natspkg.Client, notifier notify.NotifyUC, dashboards notify.DashboardUC, now models.Clock) *PaymentsHandler {
	if now == nil {
		now = models.Now
	}
	return &PaymentsHandler{
		client:     client,
		notifier:   notifier,
		dashboards: dashboards,
		now:        now,
	}
}

// Start subscribes every instance to both subjects. No queue group is used since each
// instance only reaches its own connections.
func (h *PaymentsHandler) Start() error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectWalletUpdated:   h.handleWalletUpdated,
		constants.SubjectEarningsUpdated: h.handleEarningsUpdated,
	}
	for subject, handler := range subjects {
		consumer, err := natspkg.NewConsumer(h.client, subject, "", handler)
		if err != nil {
			h.Stop()
			return err
		}
		h.consumers = append(h.consumers, consumer)
	}
	logger.Info("Payments consumers started", logger.Int("subjects", len(subjects)))
	return nil
}

// Stop unsubscribes all consumers
func (h *PaymentsHandler) Stop() {
	for _, c := range h.consumers {
		if err := c.Stop(); err != nil {
			logger.Warn("Failed to stop consumer", logger.Err(err))
		}
	}
	h.consumers = nil
}

func (h *PaymentsHandler) handleWalletUpdated(data []byte) error {
	var msg models.WalletUpdatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal wallet update: %w", err)
	}
	if msg.UserID == "" {
		return fmt.Errorf("wallet update without user_id")
	}

	at := msg.UpdatedAt
	if at.IsZero() {
		at = h.now()
	}
	h.notifier.PublishToTopic(context.Background(), models.TopicWallet, msg.UserID, models.WalletUpdate{
		UserID:    msg.UserID,
		Wallet:    msg.Wallet,
		Timestamp: at,
	})
	return nil
}

func (h *PaymentsHandler) handleEarningsUpdated(data []byte) error {
	var msg models.EarningsUpdatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal earnings update: %w", err)
	}
	if msg.DriverID == "" {
		return fmt.Errorf("earnings update without driver_id")
	}
	if msg.UpdatedAt.IsZero() {
		msg.UpdatedAt = h.now()
	}

	snapshot := msg.Snapshot()
	h.dashboards.RecordEarnings(snapshot)

	ctx := context.Background()
	update := models.DashboardUpdate{Payload: snapshot, Timestamp: msg.UpdatedAt}
	h.notifier.Publish(ctx, models.DashboardChannel(msg.DriverID, models.RoleDriver), update)
	h.notifier.PublishToTopic(ctx, models.TopicEarnings, msg.DriverID, update)
	return nil
}
