package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	jwtpkg "github.com/piresc/nebengcab/internal/pkg/jwt"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenLength = 48

var errBadCredentials = apperror.Unauthorized("invalid username or password")

// Register creates a customer or driver account. Drivers start available
// and unverified.
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	defer nrpkg.StartSegment(ctx, "Users.Register").End()

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role == models.RoleAdmin {
		return nil, apperror.Forbidden("admin accounts cannot self-register")
	}
	if !role.Valid() {
		return nil, apperror.Validation("unknown role %q", role)
	}
	if role == models.RoleDriver && strings.TrimSpace(req.LicenseNo) == "" {
		return nil, apperror.Validation("license_no is required for drivers")
	}

	return uc.createUser(ctx, req, role)
}

// CreateAdmin creates an admin account
func (uc *userUC) CreateAdmin(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	defer nrpkg.StartSegment(ctx, "Users.CreateAdmin").End()
	return uc.createUser(ctx, req, models.RoleAdmin)
}

// EnsureBootstrapAdmin creates the configured admin account when it does not exist yet
func (uc *userUC) EnsureBootstrapAdmin(ctx context.Context) error {
	auth := uc.cfg.Auth
	if auth.BootstrapAdmin == "" {
		return nil
	}

	_, err := uc.userRepo.GetUserByUsername(ctx, auth.BootstrapAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("lookup bootstrap admin: %w", err)
	}
	if auth.BootstrapPassword == "" {
		return fmt.Errorf("bootstrap admin %s has no password configured", auth.BootstrapAdmin)
	}

	_, err = uc.createUser(ctx, &models.RegisterRequest{
		Username: auth.BootstrapAdmin,
		Email:    auth.BootstrapEmail,
		Password: auth.BootstrapPassword,
		FullName: "Administrator",
	}, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	logger.InfoCtx(ctx, "Bootstrap admin created", logger.String("username", auth.BootstrapAdmin))
	return nil
}

func (uc *userUC) createUser(ctx context.Context, req *models.RegisterRequest, role models.Role) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == models.RoleDriver {
		user.Driver = &models.Driver{
			UserID:    user.ID,
			LicenseNo: req.LicenseNo,
			Available: true,
		}
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create %s %s: %w", role, req.Username, err)
	}
	return user, nil
}

// Login checks the credentials and issues a signed token
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	defer nrpkg.StartSegment(ctx, "Users.Login").End()

	user, err := uc.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errBadCredentials
	}

	token, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &models.AuthResponse{
		Token:     token.Value,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, nil
}

// Logout revokes the token until it would have expired anyway
func (uc *userUC) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	defer nrpkg.StartSegment(ctx, "Users.Logout").End()

	ttl := expiresAt.Sub(uc.now())
	if ttl <= 0 {
		return nil
	}
	if err := uc.tokenStore.RevokeToken(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// RequestPasswordReset stores a one-time reset token for the account owning
// the email. Unknown emails succeed silently.
func (uc *userUC) RequestPasswordReset(ctx context.Context, req *models.ForgotPasswordRequest) error {
	defer nrpkg.StartSegment(ctx, "Users.RequestPasswordReset").End()

	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.InfoCtx(ctx, "Password reset for unknown email", logger.String("email", utils.MaskEmail(req.Email)))
			return nil
		}
		return fmt.Errorf("request password reset: %w", err)
	}

	token, err := utils.GenerateRandomHex(resetTokenLength)
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}

	ttl := time.Duration(uc.cfg.Auth.ResetTokenTTL) * time.Minute
	if err := uc.tokenStore.SaveResetToken(ctx, token, user.ID, ttl); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}

	// No mail transport yet, the token is delivered through the log
	logger.InfoCtx(ctx, "Password reset requested",
		logger.String("email", utils.MaskEmail(user.Email)),
		logger.String("reset_token", token),
		logger.Duration("ttl", ttl))
	return nil
}

// ResetPassword consumes a reset token and replaces the password
func (uc *userUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	defer nrpkg.StartSegment(ctx, "Users.ResetPassword").End()

	userID, err := uc.tokenStore.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), uc.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
