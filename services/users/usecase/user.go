package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/services/users"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// userUC implements the business logic for accounts
type userUC struct {
	cfg        *models.Config
	userRepo   users.UserRepo
	tokenStore users.TokenStore
	hashCost   int
	now        func() time.Time
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	tokenStore users.TokenStore,
) users.UserUC {
	return &userUC{
		cfg:        cfg,
		userRepo:   userRepo,
		tokenStore: tokenStore,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// GetUser returns a user. Non-admins may only read their own record.
func (uc *userUC) GetUser(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.User, error) {
	defer nrpkg.StartSegment(ctx, "Users.GetUser").End()

	if !actor.IsAdmin() && actor.UserID != id {
		return nil, apperror.Forbidden("cannot read another user's profile")
	}

	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of req to the caller's profile
func (uc *userUC) UpdateProfile(ctx context.Context, actor models.Actor, req *models.UpdateProfileRequest) (*models.User, error) {
	defer nrpkg.StartSegment(ctx, "Users.UpdateProfile").End()

	user, err := uc.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Mobile != nil {
		user.Mobile = *req.Mobile
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	user.UpdatedAt = uc.now().UTC()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// ListUsers pages through users, optionally by role
func (uc *userUC) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	defer nrpkg.StartSegment(ctx, "Users.ListUsers").End()

	if filter.Role != "" && !filter.Role.Valid() {
		return nil, apperror.Validation("unknown role %q", filter.Role)
	}
	if filter.Offset < 0 {
		return nil, apperror.Validation("offset must not be negative")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	list, err := uc.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// DeleteUser removes an account by username. Admins cannot remove themselves.
func (uc *userUC) DeleteUser(ctx context.Context, actor models.Actor, username string) error {
	defer nrpkg.StartSegment(ctx, "Users.DeleteUser").End()

	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	if user.ID == actor.UserID {
		return apperror.Validation("cannot delete your own account")
	}

	if err := uc.userRepo.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	return nil
}

// VerifyDriver marks a driver as verified so it can be assigned trips
func (uc *userUC) VerifyDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	defer nrpkg.StartSegment(ctx, "Users.VerifyDriver").End()

	driver, err := uc.userRepo.VerifyDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("verify driver %s: %w", driverID, err)
	}
	return driver, nil
}
