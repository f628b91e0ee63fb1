package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// CreateTrip books a new trip
func (h *TripHandler) CreateTrip(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Trips.CreateTrip", err)
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Trips.CreateTrip", err)
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.HandleError(c, "Trips.CreateTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// ListTrips lists the caller's trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Trips.ListTrips", err)
	}

	list, err := h.tripUC.ListTrips(c.Request().Context(), actor)
	if err != nil {
		return utils.HandleError(c, "Trips.ListTrips", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListOpenTrips lists scheduled trips near ?lat=&lng=, optionally filtered by car_type
func (h *TripHandler) ListOpenTrips(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Trips.ListOpenTrips", err)
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat query parameter is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng query parameter is required")
	}

	query := models.OpenTripQuery{
		Latitude:  lat,
		Longitude: lng,
		CarType:   c.QueryParam("car_type"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		query.Limit = limit
	}

	list, err := h.tripUC.ListOpenTrips(c.Request().Context(), actor, query)
	if err != nil {
		return utils.HandleError(c, "Trips.ListOpenTrips", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetTrip returns one trip
func (h *TripHandler) GetTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.GetTrip")
	if !ok {
		return err
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), actor, tripID)
	if err != nil {
		return utils.HandleError(c, "Trips.GetTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// AssignTrip confirms a trip with a driver. An empty body lets drivers take
// the trip themselves and lets admins auto-pick a driver.
func (h *TripHandler) AssignTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.AssignTrip")
	if !ok {
		return err
	}

	var req models.AssignTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	trip, err := h.tripUC.AssignTrip(c.Request().Context(), actor, tripID, req.DriverID)
	if err != nil {
		return utils.HandleError(c, "Trips.AssignTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip confirmed", trip)
}

// StartTrip starts a confirmed trip
func (h *TripHandler) StartTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.StartTrip")
	if !ok {
		return err
	}

	trip, err := h.tripUC.StartTrip(c.Request().Context(), actor, tripID)
	if err != nil {
		return utils.HandleError(c, "Trips.StartTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip started", trip)
}

// CompleteTrip ends a trip with the travelled distance
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.CompleteTrip")
	if !ok {
		return err
	}

	var req models.CompleteTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Trips.CompleteTrip", err)
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), actor, tripID, *req.DistanceInKm)
	if err != nil {
		return utils.HandleError(c, "Trips.CompleteTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", trip)
}

// CancelTrip cancels a trip that has not started
func (h *TripHandler) CancelTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.CancelTrip")
	if !ok {
		return err
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), actor, tripID)
	if err != nil {
		return utils.HandleError(c, "Trips.CancelTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", trip)
}

// RateTrip records the customer's rating
func (h *TripHandler) RateTrip(c echo.Context) error {
	actor, tripID, ok, err := h.actorAndTrip(c, "Trips.RateTrip")
	if !ok {
		return err
	}

	var req models.RateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Trips.RateTrip", err)
	}

	trip, err := h.tripUC.RateTrip(c.Request().Context(), actor, tripID, *req.Rating)
	if err != nil {
		return utils.HandleError(c, "Trips.RateTrip", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip rated", trip)
}

// actorAndTrip resolves the caller and the :id path parameter. When ok is
// false the error response has already been written and err is its result.
func (h *TripHandler) actorAndTrip(c echo.Context, op string) (models.Actor, uuid.UUID, bool, error) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return models.Actor{}, uuid.Nil, false, utils.HandleError(c, op, err)
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return models.Actor{}, uuid.Nil, false, utils.BadRequestResponse(c, "Invalid trip ID")
	}
	return actor, tripID, true, nil
}
