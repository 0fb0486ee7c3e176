package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-reestr/internal/company"
	companyerrors "go-reestr/internal/company/errors"
	companyMock "go-reestr/internal/company/mock"
	"go-reestr/internal/dashboard"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *companyMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	companies := companyMock.NewMockService(ctrl)

	handler := dashboard.NewHandler(dashboard.NewService(companies, zap.NewNop()), zap.NewNop())

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	dashboard.RegisterPageRoutes(r, handler)
	dashboard.RegisterRoutes(r.Group("/api/v1"), handler)
	return r, companies
}

func sampleList() company.ListResult {
	return company.ListResult{Companies: []company.Company{
		{ID: 1, Name: "ООО Ромашка", Reestr: true},
		{ID: 2, Name: "АО Лютик"},
	}}
}

func TestHandler_Page(t *testing.T) {
	t.Run("renders cards and chart data", func(t *testing.T) {
		r, companies := setupRouter(t)
		companies.EXPECT().List(gomock.Any(), company.ListQuery{}).Return(sampleList(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "50.0%")
		assert.Contains(t, w.Body.String(), `"pie_percent"`)
		assert.Contains(t, w.Body.String(), `<canvas id="trend">`)
	})

	t.Run("load failure shows error", func(t *testing.T) {
		r, companies := setupRouter(t)
		companies.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{}, companyerrors.ErrUpstreamUnavailable)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), companyerrors.ErrUpstreamUnavailable.Message)
		assert.NotContains(t, w.Body.String(), "<canvas")
	})
}

func TestHandler_GetSummary(t *testing.T) {
	r, companies := setupRouter(t)
	companies.EXPECT().List(gomock.Any(), gomock.Any()).Return(sampleList(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Ok   bool              `json:"ok"`
		Data dashboard.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, 2, env.Data.Total)
	assert.Equal(t, 1, env.Data.InReestr)
}
