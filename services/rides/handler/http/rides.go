package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/rides"
)

// RideHandler handles ride lifecycle HTTP requests
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// RegisterRoutes mounts the ride endpoints on an authenticated group.
// createLimits guard ride creation only.
func (h *RideHandler) RegisterRoutes(g *echo.Group, createLimits ...echo.MiddlewareFunc) {
	g.POST("/rides/estimate", h.EstimateFare)
	g.POST("/rides", h.CreateRide, append([]echo.MiddlewareFunc{middleware.RequireRole(models.RoleRider)}, createLimits...)...)
	g.GET("/rides/active", h.GetActiveRide)
	g.GET("/rides/:id", h.GetRide)

	driverOnly := middleware.RequireRole(models.RoleDriver)
	g.POST("/rides/:id/accept", h.Accept, driverOnly)
	g.POST("/rides/:id/arrive", h.Arrive, driverOnly)
	g.POST("/rides/:id/start", h.Start, driverOnly)
	g.POST("/rides/:id/complete", h.Complete, driverOnly)
	g.POST("/rides/:id/cancel", h.Cancel)
	g.POST("/rides/:id/retry", h.Retry, middleware.RequireRole(models.RoleRider))
}

// RegisterInternalRoutes mounts the endpoints called by collaborating services
func (h *RideHandler) RegisterInternalRoutes(g *echo.Group) {
	g.POST("/documents/transition", h.TransitionDocument)
}

// EstimateFare quotes a trip
func (h *RideHandler) EstimateFare(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Rides.EstimateFare")

	var req models.FareEstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	estimates, err := h.rideUC.EstimateFare(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated", estimates)
}

// CreateRide books a ride for the calling rider
func (h *RideHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateRide")

	actor := middleware.Actor(c)
	if actor.UserID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), actor.UserID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	middleware.SetRideID(c, ride.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// GetRide returns a ride the caller may see
func (h *RideHandler) GetRide(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Rides.GetRide")

	ride, err := h.rideUC.GetRide(c.Request().Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride found", ride)
}

// GetActiveRide returns the caller's current ride
func (h *RideHandler) GetActiveRide(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Rides.GetActiveRide")

	actor := middleware.Actor(c)
	if actor.UserID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := h.rideUC.GetActiveRideForUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if ride == nil {
		return utils.ErrorResponseHandler(c, http.StatusNotFound, "No active ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride found", ride)
}

type rideAction func(rides.RideUC, echo.Context, models.Actor) (*models.Ride, error)

func (h *RideHandler) transition(c echo.Context, name, message string, action rideAction) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	actor := middleware.Actor(c)
	if actor.UserID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	middleware.SetRideID(c, c.Param("id"))

	ride, err := action(h.rideUC, c, actor)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

// Accept confirms a ride offer
func (h *RideHandler) Accept(c echo.Context) error {
	return h.transition(c, "Rides.Accept", "Ride accepted", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		return uc.Accept(c.Request().Context(), c.Param("id"), a)
	})
}

// Arrive marks the driver at the pickup
func (h *RideHandler) Arrive(c echo.Context) error {
	return h.transition(c, "Rides.Arrive", "Driver arrived", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		return uc.Arrive(c.Request().Context(), c.Param("id"), a)
	})
}

// Start begins the trip
func (h *RideHandler) Start(c echo.Context) error {
	return h.transition(c, "Rides.Start", "Ride started", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		return uc.Start(c.Request().Context(), c.Param("id"), a)
	})
}

// Complete ends the trip
func (h *RideHandler) Complete(c echo.Context) error {
	return h.transition(c, "Rides.Complete", "Ride completed", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		return uc.Complete(c.Request().Context(), c.Param("id"), a)
	})
}

// Retry puts a ride without drivers back into dispatch
func (h *RideHandler) Retry(c echo.Context) error {
	return h.transition(c, "Rides.Retry", "Ride dispatched again", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		return uc.Retry(c.Request().Context(), c.Param("id"), a)
	})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel aborts a ride. The body is optional.
func (h *RideHandler) Cancel(c echo.Context) error {
	return h.transition(c, "Rides.Cancel", "Ride cancelled", func(uc rides.RideUC, c echo.Context, a models.Actor) (*models.Ride, error) {
		var req cancelRequest
		if c.Request().ContentLength > 0 {
			if err := c.Bind(&req); err != nil {
				return nil, apperrors.Validation("invalid request body: %v", err)
			}
		}
		return uc.Cancel(c.Request().Context(), c.Param("id"), a, req.Reason)
	})
}

// TransitionDocument validates one step of a driver document review
func (h *RideHandler) TransitionDocument(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Documents.Transition")

	var req models.DocumentTransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	doc, err := h.rideUC.ApplyDocumentAction(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document updated", doc)
}
