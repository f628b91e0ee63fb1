package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// UserUC defines the interface for account and authentication business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengcab/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	CreateAdmin(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	EnsureBootstrapAdmin(ctx context.Context) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error

	GetUser(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, actor models.Actor, req *models.UpdateProfileRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	DeleteUser(ctx context.Context, actor models.Actor, username string) error
	VerifyDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)

	RequestPasswordReset(ctx context.Context, req *models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}
