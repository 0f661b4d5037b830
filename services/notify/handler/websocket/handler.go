package websocket

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	wspkg "github.com/piresc/dispatch/internal/pkg/websocket"
	"github.com/piresc/dispatch/services/notify"
)

// conn is the part of a websocket client the handler talks to
type conn interface {
	ConnectionID() string
	UserID() string
	Role() string
	Send(data []byte) bool
	SendEvent(e models.Event) bool
	SendError(code, message string) bool
}

// Handler routes client messages to the notifier, the dashboards and the location store
type Handler struct {
	notifier   notify.NotifyUC
	dashboards notify.DashboardUC
	locations  notify.LocationUpdater
	rides      notify.RideReader
	streams    notify.Streams
	now        models.Clock
}

// NewHandler creates the dispatch websocket handler
func NewHandler(
	notifier notify.NotifyUC,
	dashboards notify.DashboardUC,
	locations notify.LocationUpdater,
	rides notify.RideReader,
	streams notify.Streams,
	now models.Clock,
) *Handler {
	if now == nil {
		now = models.Now
	}
	return &Handler{
		notifier:   notifier,
		dashboards: dashboards,
		locations:  locations,
		rides:      rides,
		streams:    streams,
		now:        now,
	}
}

// RegisterRoutes mounts the websocket endpoint. Authentication happens in the manager.
func (h *Handler) RegisterRoutes(e *echo.Echo, manager *wspkg.Manager) {
	e.GET("/ws", func(c echo.Context) error {
		return manager.HandleConnection(c, h)
	})
}

// OnConnect attaches the connection and subscribes it to its personal channel
func (h *Handler) OnConnect(client *wspkg.Client) {
	h.connect(client)
}

// OnMessage handles one client message
func (h *Handler) OnMessage(ctx context.Context, client *wspkg.Client, msg models.WSMessage) {
	h.handle(ctx, client, msg)
}

// OnDisconnect drops every subscription of the connection
func (h *Handler) OnDisconnect(client *wspkg.Client) {
	h.disconnect(client)
}

func (h *Handler) connect(c conn) {
	h.notifier.Attach(c)
	h.notifier.Subscribe(c.ConnectionID(), models.UserChannel(c.UserID()))
	logger.Info("Dispatch client connected",
		logger.String("connection_id", c.ConnectionID()),
		logger.String("user_id", c.UserID()),
		logger.String("role", c.Role()))
}

func (h *Handler) disconnect(c conn) {
	for _, key := range h.notifier.Detach(c.ConnectionID()) {
		h.releaseIfEmpty(key)
	}
	logger.Info("Dispatch client disconnected",
		logger.String("connection_id", c.ConnectionID()),
		logger.String("user_id", c.UserID()))
}

// releaseIfEmpty stops the periodic job behind a channel once nobody listens to it
func (h *Handler) releaseIfEmpty(key models.ChannelKey) {
	if h.notifier.HasMembers(key) {
		return
	}
	switch key.Kind {
	case models.ChannelRide:
		h.streams.StopRideStream(key.RideID, key.UserID)
	case models.ChannelDashboard:
		h.streams.StopDashboard(key.UserID, key.Role)
	}
}

func (h *Handler) handle(ctx context.Context, c conn, msg models.WSMessage) {
	var err error
	switch msg.Event {
	case constants.MsgPing:
		c.SendEvent(models.Pong{Timestamp: h.now()})
	case constants.MsgSubscribeDashboard:
		err = h.subscribeDashboard(ctx, c, msg.Data)
	case constants.MsgUnsubscribeDashboard:
		key := models.DashboardChannel(c.UserID(), c.Role())
		h.notifier.Unsubscribe(c.ConnectionID(), key)
		h.releaseIfEmpty(key)
	case constants.MsgUpdateLocation:
		err = h.updateLocation(ctx, c, msg.Data)
	case constants.MsgSubscribeWallet:
		h.notifier.Subscribe(c.ConnectionID(), models.TopicChannel(models.TopicWallet, c.UserID()))
	case constants.MsgSubscribeEarnings:
		h.notifier.Subscribe(c.ConnectionID(), models.TopicChannel(models.TopicEarnings, c.UserID()))
	case constants.MsgSubscribeRideHistory:
		h.notifier.Subscribe(c.ConnectionID(), models.TopicChannel(models.TopicRideHistory, c.UserID()))
	case constants.MsgSubscribeRide:
		err = h.subscribeRide(ctx, c, msg.Data)
	case constants.MsgUnsubscribeRide:
		err = h.unsubscribeRide(c, msg.Data)
	default:
		c.SendError(constants.ErrorUnknownMessage, "unknown message: "+msg.Event)
		return
	}

	if err != nil {
		logger.Debug("Rejected client message",
			logger.String("connection_id", c.ConnectionID()),
			logger.String("event", msg.Event),
			logger.Err(err))
		c.SendError(apperrors.Code(err), apperrors.Message(err))
	}
}

func decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return apperrors.Validation("missing message data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.Validation("invalid message data: %v", err)
	}
	return nil
}

func (h *Handler) subscribeDashboard(ctx context.Context, c conn, data json.RawMessage) error {
	var req models.SubscribeDashboardRequest
	if len(data) > 0 {
		if err := decode(data, &req); err != nil {
			return err
		}
	}
	if req.Role != "" && req.Role != c.Role() {
		return apperrors.Validation("role %q does not match the connection role", req.Role)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return apperrors.Validation("lat and lon must be sent together")
	}

	sub := models.DashboardSubscription{ConnectionID: c.ConnectionID(), UserID: c.UserID(), Role: c.Role()}
	if req.Latitude != nil {
		sub.Origin = &models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	snapshot, err := h.dashboards.InitialSnapshot(ctx, sub)
	if err != nil {
		return err
	}
	h.notifier.Subscribe(c.ConnectionID(), models.DashboardChannel(sub.UserID, sub.Role))
	c.SendEvent(snapshot)
	h.streams.StartDashboard(sub)
	return nil
}

func (h *Handler) updateLocation(ctx context.Context, c conn, data json.RawMessage) error {
	if c.Role() != models.RoleDriver {
		return apperrors.ErrForbidden
	}
	var update models.PositionUpdate
	if err := decode(data, &update); err != nil {
		return err
	}
	_, err := h.locations.UpdateDriverLocation(ctx, models.AccountRef(c.UserID()), update)
	return err
}

func (h *Handler) subscribeRide(ctx context.Context, c conn, data json.RawMessage) error {
	var req models.RideSubscriptionRequest
	if err := decode(data, &req); err != nil {
		return err
	}
	if req.RideID == "" {
		return apperrors.Validation("rideId is required")
	}

	ride, err := h.rides.GetRide(ctx, req.RideID, models.Actor{UserID: c.UserID(), Role: c.Role()})
	if err != nil {
		return err
	}

	h.notifier.Subscribe(c.ConnectionID(), models.RideChannel(ride.ID, c.UserID()))
	c.SendEvent(models.NewRideStatusChange(ride, ride.Status, h.now()))
	if !ride.Status.Terminal() {
		h.streams.StartRideStream(ride.ID, c.UserID())
	}
	return nil
}

func (h *Handler) unsubscribeRide(c conn, data json.RawMessage) error {
	var req models.RideSubscriptionRequest
	if err := decode(data, &req); err != nil {
		return err
	}
	key := models.RideChannel(req.RideID, c.UserID())
	h.notifier.Unsubscribe(c.ConnectionID(), key)
	h.releaseIfEmpty(key)
	return nil
}
