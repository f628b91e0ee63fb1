package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/services/cabs"
	httpHandler "github.com/piresc/nebengcab/services/cabs/handler/http"
)

// Handler combines all handlers for the cabs service
type Handler struct {
	cabHTTP *httpHandler.CabHandler
}

// NewHandler creates a new combined handler
func NewHandler(cabUC cabs.CabUC) *Handler {
	return &Handler{
		cabHTTP: httpHandler.NewCabHandler(cabUC),
	}
}

// RegisterRoutes registers the cab routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	owners := middleware.RequireRoles(models.RoleDriver, models.RoleAdmin)

	cabGroup := api.Group("/cabs")
	cabGroup.POST("", h.cabHTTP.RegisterCab, owners)
	cabGroup.GET("", h.cabHTTP.ListCabs)
	cabGroup.GET("/:id", h.cabHTTP.GetCab)
	cabGroup.PUT("/:id", h.cabHTTP.UpdateCab, owners)
	cabGroup.DELETE("/:id", h.cabHTTP.DeleteCab, owners)
}
