package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/match"
)

// MatchHandler serves proximity searches
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// RegisterRoutes mounts the search endpoints on an authenticated group
func (h *MatchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/drivers/nearby", h.NearbyDrivers)
	g.GET("/rides/requests/nearby", h.NearbyRideRequests, middleware.RequireRole(models.RoleDriver))
}

// NearbyDrivers lists ranked driver candidates around lat/lon
func (h *MatchHandler) NearbyDrivers(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Match.NearbyDrivers")

	origin, radius, err := parseOrigin(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	vehicleType := models.VehicleType(c.QueryParam("vehicleType"))
	if vehicleType != "" && !vehicleType.Valid() {
		return utils.BadRequestResponse(c, "invalid vehicleType")
	}

	q := models.NearbyDriversQuery{
		Origin:      origin,
		RadiusKm:    radius,
		VehicleType: vehicleType,
	}
	if actor := middleware.Actor(c); actor.Role == models.RoleDriver {
		q.ExcludeDriverID = actor.UserID
	}

	drivers, err := h.matchUC.NearbyDrivers(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers found", drivers)
}

// NearbyRideRequests lists open ride requests around a driver
func (h *MatchHandler) NearbyRideRequests(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Match.NearbyRideRequests")

	origin, radius, err := parseOrigin(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var window time.Duration
	if raw := c.QueryParam("window"); raw != "" {
		window, err = time.ParseDuration(raw)
		if err != nil || window < 0 {
			return utils.BadRequestResponse(c, "invalid window")
		}
	}

	rides, err := h.matchUC.NearbyRideRequests(c.Request().Context(), origin, radius, window)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby ride requests found", rides)
}

type queryError string

func (e queryError) Error() string { return string(e) }

// parseOrigin reads lat, lon and the optional radius query parameters
func parseOrigin(c echo.Context) (models.Location, float64, error) {
	latStr, lonStr := c.QueryParam("lat"), c.QueryParam("lon")
	if latStr == "" || lonStr == "" {
		return models.Location{}, 0, queryError("lat and lon are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Location{}, 0, queryError("invalid latitude")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return models.Location{}, 0, queryError("invalid longitude")
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Location{}, 0, queryError("invalid radius")
		}
	}
	return models.Location{Latitude: lat, Longitude: lon}, radius, nil
}
