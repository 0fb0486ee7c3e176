package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-reestr/internal/company"
	companyerrors "go-reestr/internal/company/errors"
	companyMock "go-reestr/internal/company/mock"
	"go-reestr/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]int  `json:"meta"`
	Error struct {
		Code    string                `json:"code"`
		Message string                `json:"message"`
		Details []apperror.FieldError `json:"details"`
	} `json:"error"`
}

func setupAPIRouter(t *testing.T) (*gin.Engine, *companyMock.MockService) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService, zap.NewNop())

	r := gin.New()
	company.RegisterRoutes(r.Group("/api/v1"), handler, nil)
	return r, mockService
}

func doJSON(r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_List(t *testing.T) {
	r, svc := setupAPIRouter(t)

	t.Run("success with meta", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), company.ListQuery{Skip: 5, Limit: 2}).Return(company.ListResult{
			Companies: []company.Company{{ID: 1, Name: "ООО Ромашка"}, {ID: 2, Name: "АО Лютик"}},
			Skip:      5,
			Limit:     2,
		}, nil)

		w, env := doJSON(r, http.MethodGet, "/api/v1/companies?skip=5&limit=2", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
		assert.Equal(t, map[string]int{"total": 2, "skip": 5, "limit": 2}, env.Meta)

		var rows []company.Company
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("invalid limit", func(t *testing.T) {
		w, env := doJSON(r, http.MethodGet, "/api/v1/companies?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{}, companyerrors.ErrUpstreamUnavailable)

		w, env := doJSON(r, http.MethodGet, "/api/v1/companies", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, apperror.CodeServiceUnavailable, env.Error.Code)
	})
}

func TestHandler_GetByID(t *testing.T) {
	r, svc := setupAPIRouter(t)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().GetDetails(gomock.Any(), int64(1)).Return(company.Company{ID: 1, Name: "ООО Ромашка", INN: "7701234567"}, nil)

		w, env := doJSON(r, http.MethodGet, "/api/v1/companies/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var comp company.Company
		require.NoError(t, json.Unmarshal(env.Data, &comp))
		assert.Equal(t, "7701234567", comp.INN)
	})

	t.Run("invalid id", func(t *testing.T) {
		w, env := doJSON(r, http.MethodGet, "/api/v1/companies/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, companyerrors.ErrInvalidCompanyID.Message, env.Error.Message)
	})

	t.Run("not found", func(t *testing.T) {
		svc.EXPECT().GetDetails(gomock.Any(), int64(9)).Return(company.Company{}, companyerrors.ErrCompanyNotFound)

		w, env := doJSON(r, http.MethodGet, "/api/v1/companies/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})
}

func TestHandler_GetByINN(t *testing.T) {
	r, svc := setupAPIRouter(t)

	svc.EXPECT().GetDetailsByINN(gomock.Any(), "7701234567").Return(company.Company{ID: 1, INN: "7701234567"}, nil)

	w, env := doJSON(r, http.MethodGet, "/api/v1/companies/inn/7701234567", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)
}

func TestHandler_Create(t *testing.T) {
	r, svc := setupAPIRouter(t)

	t.Run("success", func(t *testing.T) {
		req := company.CreateCompanyRequest{Name: "ООО Ромашка", INN: "7701234567", OGRN: "1027700000000", Reestr: true}
		svc.EXPECT().Create(gomock.Any(), req).Return(company.Company{ID: 10, Name: req.Name, INN: req.INN, OGRN: req.OGRN, Reestr: true}, nil)

		w, env := doJSON(r, http.MethodPost, "/api/v1/companies", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var comp company.Company
		require.NoError(t, json.Unmarshal(env.Data, &comp))
		assert.Equal(t, int64(10), comp.ID)
	})

	t.Run("missing field is rejected before the service", func(t *testing.T) {
		w, env := doJSON(r, http.MethodPost, "/api/v1/companies", map[string]any{"name": "ООО Ромашка", "inn": "7701234567"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Поле «ОГРН» обязательно для заполнения", env.Error.Message)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "ogrn", env.Error.Details[0].Field)
	})

	t.Run("service validation error", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(company.Company{}, companyerrors.ErrMissingRequiredFields)

		w, env := doJSON(r, http.MethodPost, "/api/v1/companies", map[string]any{"name": " ", "inn": "1", "ogrn": "2"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, companyerrors.ErrMissingRequiredFields.Message, env.Error.Message)
	})
}
