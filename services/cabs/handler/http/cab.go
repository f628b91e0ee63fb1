package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/cabs"
)

// CabHandler handles HTTP requests for cab operations
type CabHandler struct {
	cabUC cabs.CabUC
}

// NewCabHandler creates a new cab HTTP handler
func NewCabHandler(cabUC cabs.CabUC) *CabHandler {
	return &CabHandler{
		cabUC: cabUC,
	}
}

// RegisterCab adds a cab
func (h *CabHandler) RegisterCab(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Cabs.RegisterCab", err)
	}

	var req models.RegisterCabRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Cabs.RegisterCab", err)
	}

	cab, err := h.cabUC.RegisterCab(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.HandleError(c, "Cabs.RegisterCab", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Cab registered", cab)
}

// ListCabs lists cabs with ?car_type=&available=
func (h *CabHandler) ListCabs(c echo.Context) error {
	filter := models.CabFilter{CarType: c.QueryParam("car_type")}
	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "available must be a boolean")
		}
		filter.AvailableOnly = available
	}

	list, err := h.cabUC.ListCabs(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, "Cabs.ListCabs", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetCab returns one cab
func (h *CabHandler) GetCab(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cab ID")
	}

	cab, err := h.cabUC.GetCab(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, "Cabs.GetCab", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", cab)
}

// UpdateCab edits a cab owned by the caller
func (h *CabHandler) UpdateCab(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Cabs.UpdateCab", err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cab ID")
	}

	var req models.UpdateCabRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Cabs.UpdateCab", err)
	}

	cab, err := h.cabUC.UpdateCab(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.HandleError(c, "Cabs.UpdateCab", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cab updated", cab)
}

// DeleteCab removes a cab owned by the caller
func (h *CabHandler) DeleteCab(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Cabs.DeleteCab", err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cab ID")
	}

	if err := h.cabUC.DeleteCab(c.Request().Context(), actor, id); err != nil {
		return utils.HandleError(c, "Cabs.DeleteCab", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cab deleted", nil)
}
