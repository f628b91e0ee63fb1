package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/abc/assign", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{"created with data", http.StatusCreated, "Trip created", map[string]interface{}{"id": "123"}},
		{"ok without data", http.StatusOK, "Logged out", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Empty(t, response.Error)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(c echo.Context) error
		wantCode int
		wantMsg  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "Invalid request body") }, http.StatusBadRequest, "Invalid request body"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"custom", func(c echo.Context) error { return ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded") }, http.StatusTooManyRequests, "Rate limit exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMsg, response.Error)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		wantKind string
	}{
		{"not found", apperror.NotFound("trip abc not found"), http.StatusNotFound, "trip abc not found", "not_found"},
		{"invalid state", apperror.InvalidState("trip is COMPLETED"), http.StatusConflict, "trip is COMPLETED", "invalid_state"},
		{"unavailable", apperror.Unavailable("driver is not available"), http.StatusUnprocessableEntity, "driver is not available", "unavailable"},
		{"validation", apperror.Validation("rating must be between 1 and 5"), http.StatusBadRequest, "rating must be between 1 and 5", "validation"},
		{"forbidden", apperror.Forbidden("not your trip"), http.StatusForbidden, "not your trip", "forbidden"},
		{"internal is masked", errors.New("pq: deadlock detected"), http.StatusInternalServerError, "Internal server error", "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleError(c, "trips.Assign", tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMsg, response.Error)
			assert.Equal(t, tt.wantKind, response.Kind)
		})
	}
}
