package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set(middleware.ContextKeyUserID, actor.UserID)
		c.Set(middleware.ContextKeyRole, actor.Role)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/auth/register",
		`{"username":"budi","email":"budi@example.com","password":"secret123","role":"driver","license_no":"B1234"}`, nil)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.RegisterRequest) (*models.User, error) {
			assert.Equal(t, models.RoleDriver, req.Role)
			assert.Equal(t, "B1234", req.LicenseNo)
			return &models.User{ID: uuid.New(), Username: "budi", PasswordHash: "hash", Role: models.RoleDriver}, nil
		})

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "budi", data["username"])
}

func TestRegister_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewUserHandler(mocks.NewMockUserUC(ctrl))

	c, rec := newContext(http.MethodPost, "/auth/register",
		`{"username":"budi","email":"nope","password":"secret123"}`, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/auth/register",
		`{"username":"budi","email":"budi@example.com","password":"secret123"}`, nil)
	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Conflict("username budi is already taken"))

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "username budi is already taken", decode(t, rec)["error"])
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/auth/login", `{"username":"sari","password":"secret123"}`, nil)
	mockUC.EXPECT().Login(gomock.Any(), &models.LoginRequest{Username: "sari", Password: "secret123"}).
		Return(&models.AuthResponse{Token: "tok", Role: models.RoleCustomer}, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", decode(t, rec)["data"].(map[string]interface{})["token"])

	c, rec = newContext(http.MethodPost, "/auth/login", `{"username":"sari","password":"bad"}`, nil)
	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Unauthorized("invalid username or password"))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleCustomer}
	exp := time.Now().Add(time.Hour)
	c, rec := newContext(http.MethodPost, "/auth/logout", "", &actor)
	c.Set(middleware.ContextKeyTokenID, "jti-1")
	c.Set(middleware.ContextKeyTokenExp, exp)

	mockUC.EXPECT().Logout(gomock.Any(), "jti-1", exp).Return(nil)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleCustomer}
	c, rec := newContext(http.MethodGet, "/users/me", "", &actor)
	mockUC.EXPECT().GetUser(gomock.Any(), actor, actor.UserID).
		Return(&models.User{ID: actor.UserID, Username: "sari"}, nil)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleCustomer}
	other := uuid.New()
	c, rec := newContext(http.MethodGet, "/", "", &actor)
	c.SetParamNames("id")
	c.SetParamValues(other.String())

	mockUC.EXPECT().GetUser(gomock.Any(), actor, other).
		Return(nil, apperror.Forbidden("cannot read another user's profile"))

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListUsers_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	c, rec := newContext(http.MethodGet, "/admin/users?role=driver&page=3&size=10", "", &actor)
	mockUC.EXPECT().ListUsers(gomock.Any(), models.UserFilter{Role: models.RoleDriver, Offset: 20, Limit: 10}).
		Return([]*models.User{}, nil)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/admin/users?page=0", "", &actor)
	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	c, rec := newContext(http.MethodDelete, "/", "", &actor)
	c.SetParamNames("username")
	c.SetParamValues("sari")

	mockUC.EXPECT().DeleteUser(gomock.Any(), actor, "sari").Return(apperror.NotFound("user sari not found"))

	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	driverID := uuid.New()
	c, rec := newContext(http.MethodPost, "/", "", &actor)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	mockUC.EXPECT().VerifyDriver(gomock.Any(), driverID).
		Return(&models.Driver{UserID: driverID, Verified: true}, nil)

	require.NoError(t, h.VerifyDriver(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["data"].(map[string]interface{})["verified"])
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/auth/password/reset", `{"token":"abc","new_password":"newsecret1"}`, nil)
	mockUC.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
		Return(apperror.Validation("invalid or expired reset token"))

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
