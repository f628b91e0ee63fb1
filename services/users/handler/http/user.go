package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/users"
)

// UserHandler handles HTTP requests for accounts and authentication
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Me returns the caller's profile
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Users.Me", err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor, actor.UserID)
	if err != nil {
		return utils.HandleError(c, "Users.Me", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Users.GetUser", err)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor, id)
	if err != nil {
		return utils.HandleError(c, "Users.GetUser", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateMe updates the caller's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Users.UpdateMe", err)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.UpdateMe", err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.HandleError(c, "Users.UpdateMe", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// ListUsers lists users with ?role=&page=&size=
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return utils.BadRequestResponse(c, "page must be a positive integer")
	}
	size, err := intQuery(c, "size", 20)
	if err != nil {
		return utils.BadRequestResponse(c, "size must be a positive integer")
	}

	filter := models.UserFilter{
		Role:   models.Role(c.QueryParam("role")),
		Offset: (page - 1) * size,
		Limit:  size,
	}

	list, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, "Users.ListUsers", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// CreateAdmin creates another admin account
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.CreateAdmin", err)
	}

	user, err := h.userUC.CreateAdmin(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, "Users.CreateAdmin", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Admin created", user)
}

// DeleteUser removes an account by username
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Users.DeleteUser", err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actor, c.Param("username")); err != nil {
		return utils.HandleError(c, "Users.DeleteUser", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}

// VerifyDriver marks a driver as verified
func (h *UserHandler) VerifyDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	driver, err := h.userUC.VerifyDriver(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, "Users.VerifyDriver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver verified", driver)
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
