package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
)

// Register creates a customer or driver account
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.Register", err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, "Users.Register", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered", user)
}

// Login exchanges credentials for a bearer token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.Login", err)
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, "Users.Login", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the bearer token used for this request
func (h *UserHandler) Logout(c echo.Context) error {
	tokenID, expiresAt, err := middleware.TokenFromContext(c)
	if err != nil {
		return utils.HandleError(c, "Users.Logout", err)
	}

	if err := h.userUC.Logout(c.Request().Context(), tokenID, expiresAt); err != nil {
		return utils.HandleError(c, "Users.Logout", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// ForgotPassword starts a password reset. The response does not reveal
// whether the email is registered.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.ForgotPassword", err)
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), &req); err != nil {
		return utils.HandleError(c, "Users.ForgotPassword", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "If the email is registered a reset token has been issued", nil)
}

// ResetPassword sets a new password using a reset token
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, "Users.ResetPassword", err)
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return utils.HandleError(c, "Users.ResetPassword", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
