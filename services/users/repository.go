package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengcab/services/users UserRepo,TokenStore
type UserRepo interface {
	// CreateUser inserts the user and, for drivers, the driver row in one transaction
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	DeleteByUsername(ctx context.Context, username string) error
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	VerifyDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
}

// TokenStore keeps revoked token ids and pending password reset tokens
type TokenStore interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// ConsumeResetToken returns the owner of token and deletes it
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}
