package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/services/trips"
	httpHandler "github.com/piresc/nebengcab/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the trip routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	bookers := middleware.RequireRoles(models.RoleCustomer, models.RoleAdmin)
	drivers := middleware.RequireRoles(models.RoleDriver, models.RoleAdmin)

	tripGroup := api.Group("/trips")
	tripGroup.POST("", h.tripHTTP.CreateTrip, bookers)
	tripGroup.GET("", h.tripHTTP.ListTrips)
	tripGroup.GET("/open", h.tripHTTP.ListOpenTrips, drivers)
	tripGroup.GET("/:id", h.tripHTTP.GetTrip)
	tripGroup.POST("/:id/assign", h.tripHTTP.AssignTrip, drivers)
	tripGroup.POST("/:id/start", h.tripHTTP.StartTrip, drivers)
	tripGroup.POST("/:id/complete", h.tripHTTP.CompleteTrip, drivers)
	tripGroup.POST("/:id/cancel", h.tripHTTP.CancelTrip)
	tripGroup.POST("/:id/rate", h.tripHTTP.RateTrip, middleware.RequireRoles(models.RoleCustomer))
}
