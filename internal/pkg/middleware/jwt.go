package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	jwtpkg "github.com/piresc/nebengcab/internal/pkg/jwt"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/pkg/requestcontext"
	"github.com/piresc/nebengcab/internal/utils"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "user_role"
	ContextKeyTokenID   = "token_id"
	ContextKeyTokenExp  = "token_expires_at"
	ContextKeyRequestID = "request_id"
	contextKeyClaims    = "claims"
)

var (
	errTokenRevoked    = errors.New("token has been revoked")
	errBlacklistLookup = errors.New("token blacklist lookup failed")
)

// TokenBlacklist reports whether a token id was revoked by logout
type TokenBlacklist interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens and
// stores the caller identity in the echo context
func JWTAuthMiddleware(config models.JWTConfig, blacklist TokenBlacklist) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKeyClaims,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtpkg.ValidateToken(auth, config.Secret)
			if err != nil {
				return nil, err
			}

			if blacklist != nil {
				revoked, err := blacklist.IsTokenRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", errBlacklistLookup, err)
				}
				if revoked {
					return nil, errTokenRevoked
				}
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)
			req := c.Request()
			c.SetRequest(req.WithContext(requestcontext.WithUserID(req.Context(), claims.UserID.String())))
			c.Set(ContextKeyTokenID, claims.ID)
			if claims.ExpiresAt != nil {
				c.Set(ContextKeyTokenExp, claims.ExpiresAt.Time)
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, errBlacklistLookup):
				logger.ErrorCtx(c.Request().Context(), "Token blacklist lookup failed", logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
			case errors.Is(err, errTokenRevoked):
				return utils.UnauthorizedResponse(c, "Token has been revoked")
			case errors.Is(err, echojwt.ErrJWTMissing):
				return utils.UnauthorizedResponse(c, "Missing or malformed token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}
		},
	})
}

// RequireRoles lets the request through only when the caller has one of roles
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(models.Role)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// ActorFromContext returns the authenticated caller
func ActorFromContext(c echo.Context) (models.Actor, error) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return models.Actor{}, apperror.Unauthorized("missing authenticated user")
	}
	role, _ := c.Get(ContextKeyRole).(models.Role)
	return models.Actor{UserID: userID, Role: role}, nil
}

// TokenFromContext returns the id and expiry of the token used for the request
func TokenFromContext(c echo.Context) (string, time.Time, error) {
	tokenID, _ := c.Get(ContextKeyTokenID).(string)
	if tokenID == "" {
		return "", time.Time{}, apperror.Unauthorized("missing token")
	}
	exp, _ := c.Get(ContextKeyTokenExp).(time.Time)
	return tokenID, exp, nil
}
