package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/cabs/mocks"
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

func TestRegisterCab_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockCabUC(ctrl)
	h := NewCabHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	c, rec := newContext(http.MethodPost, "/cabs", `{"car_type":"Sedan","car_number":"B 1 CAB","per_km_rate":15}`, &actor)

	mockUC.EXPECT().
		RegisterCab(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, req *models.RegisterCabRequest) (*models.Cab, error) {
			assert.Equal(t, 15.0, req.PerKmRate)
			assert.Nil(t, req.DriverID)
			return &models.Cab{ID: uuid.New(), CarType: "Sedan", PerKmRate: 15, Available: true}, nil
		})

	require.NoError(t, h.RegisterCab(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterCab_MissingRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewCabHandler(mocks.NewMockCabUC(ctrl))

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	c, rec := newContext(http.MethodPost, "/cabs", `{"car_type":"Sedan","car_number":"B 1 CAB"}`, &actor)

	require.NoError(t, h.RegisterCab(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCabs_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockCabUC(ctrl)
	h := NewCabHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/cabs?car_type=SUV&available=true", "", nil)
	mockUC.EXPECT().ListCabs(gomock.Any(), models.CabFilter{CarType: "SUV", AvailableOnly: true}).
		Return([]*models.Cab{}, nil)

	require.NoError(t, h.ListCabs(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/cabs?available=maybe", "", nil)
	require.NoError(t, h.ListCabs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCab_OnTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockCabUC(ctrl)
	h := NewCabHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	cabID := uuid.New()
	c, rec := newContext(http.MethodDelete, "/", "", &actor)
	c.SetParamNames("id")
	c.SetParamValues(cabID.String())

	mockUC.EXPECT().DeleteCab(gomock.Any(), actor, cabID).Return(apperror.InvalidState("cab %s is on a trip", cabID))

	require.NoError(t, h.DeleteCab(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_state", body["kind"])
}

func TestGetCab_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockCabUC(ctrl)
	h := NewCabHandler(mockUC)

	cabID := uuid.New()
	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(cabID.String())

	mockUC.EXPECT().GetCab(gomock.Any(), cabID).Return(nil, apperror.NotFound("cab %s not found", cabID))

	require.NoError(t, h.GetCab(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
