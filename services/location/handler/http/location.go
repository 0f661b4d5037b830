package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/location"
)

// LocationHandler handles HTTP requests for driver positions
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// RegisterRoutes mounts the driver position endpoints on an authenticated group
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/drivers/location", h.UpdateLocation, middleware.RequireRole(models.RoleDriver))
}

// UpdateLocation stores the position report of the authenticated driver
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.UpdateLocation")

	actor := middleware.Actor(c)
	if actor.UserID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PositionUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	pos, err := h.locationUC.UpdateDriverLocation(c.Request().Context(), models.AccountRef(actor.UserID), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Debug("Rejected driver position",
			logger.String("driver_id", actor.UserID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", pos)
}
