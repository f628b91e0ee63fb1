package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/constants"
	"github.com/piresc/nebengcab/internal/pkg/database"
)

// TokenRepo is the Redis implementation of users.TokenStore
type TokenRepo struct {
	redis *database.RedisClient
}

// NewTokenRepository creates a token store on top of redis
func NewTokenRepository(redis *database.RedisClient) *TokenRepo {
	return &TokenRepo{redis: redis}
}

// RevokeToken blacklists a token id for ttl
func (r *TokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyTokenBlacklist, tokenID)
	if err := r.redis.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id is blacklisted
func (r *TokenRepo) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyTokenBlacklist, tokenID)
	revoked, err := r.redis.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return revoked, nil
}

// SaveResetToken stores the owner of a password reset token for ttl
func (r *TokenRepo) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	if err := r.redis.Set(ctx, key, userID.String(), ttl); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken returns the owner of token and deletes it, so each
// token works once
func (r *TokenRepo) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	value, err := r.redis.GetDel(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperror.Validation("invalid or expired reset token")
		}
		return uuid.Nil, fmt.Errorf("failed to read reset token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt reset token value: %w", err)
	}
	return userID, nil
}
