package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/services/users"
	httpHandler "github.com/piresc/nebengcab/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	userHTTP *httpHandler.UserHandler
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
	}
}

// RegisterPublicRoutes registers the unauthenticated auth endpoints
func (h *Handler) RegisterPublicRoutes(auth *echo.Group) {
	auth.POST("/register", h.userHTTP.Register)
	auth.POST("/login", h.userHTTP.Login)
	auth.POST("/password/forgot", h.userHTTP.ForgotPassword)
	auth.POST("/password/reset", h.userHTTP.ResetPassword)
}

// RegisterRoutes registers the account routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/logout", h.userHTTP.Logout)

	userGroup := api.Group("/users")
	userGroup.GET("/me", h.userHTTP.Me)
	userGroup.PUT("/me", h.userHTTP.UpdateMe)
	userGroup.GET("/:id", h.userHTTP.GetUser)

	adminGroup := api.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	adminGroup.GET("/users", h.userHTTP.ListUsers)
	adminGroup.POST("/users", h.userHTTP.CreateAdmin)
	adminGroup.DELETE("/users/:username", h.userHTTP.DeleteUser)
	adminGroup.POST("/drivers/:id/verify", h.userHTTP.VerifyDriver)
}
