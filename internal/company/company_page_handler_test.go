package company_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-reestr/internal/company"
	companyerrors "go-reestr/internal/company/errors"
	companyMock "go-reestr/internal/company/mock"
	"go-reestr/internal/middleware"
	"go-reestr/internal/shared/apperror"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPageRouter(svc company.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.SessionUser(), middleware.DemoMode(false))
	company.RegisterPageRoutes(r, company.NewPageHandler(svc, zap.NewNop()))
	return r
}

func setupPageRouter(t *testing.T) (*gin.Engine, *companyMock.MockService) {
	ctrl := gomock.NewController(t)
	svc := companyMock.NewMockService(ctrl)
	return newPageRouter(svc), svc
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageHandler_Table(t *testing.T) {
	t.Run("renders one row per company", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().List(gomock.Any(), company.ListQuery{}).Return(company.ListResult{
			Companies: []company.Company{
				{ID: 1, Name: "ООО Ромашка", INN: "7701234567", Reestr: true},
				{ID: 2, Name: "АО Лютик", INN: "7800000000", Reestr: false},
				{ID: 3, Name: "ИП Василёк", INN: "5000000000", Reestr: false},
			},
			Limit: 100,
		}, nil)

		w := get(r, "/tables")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Equal(t, 3, strings.Count(body, `class="row-link"`))
		assert.Equal(t, 1, strings.Count(body, `badge-yes`))
		assert.Equal(t, 2, strings.Count(body, `badge-no`))
		assert.Contains(t, body, "/tables/export.xls?skip=0&amp;limit=100")
	})

	t.Run("empty list is a success state", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{Companies: []company.Company{}, Limit: 100}, nil)

		w := get(r, "/tables")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, strings.Count(w.Body.String(), `class="row-link"`))
		assert.Contains(t, w.Body.String(), "Нет компаний")
		assert.NotContains(t, w.Body.String(), `class="error"`)
	})

	t.Run("load failure renders the error instead of the table", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{}, companyerrors.ErrUpstreamUnavailable)

		w := get(r, "/tables")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), companyerrors.ErrUpstreamUnavailable.Message)
		assert.NotContains(t, w.Body.String(), "<thead>")
	})
}

func TestPageHandler_AddRow(t *testing.T) {
	t.Run("blank field re-renders form without a write", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{Companies: []company.Company{}}, nil)

		w := postForm(r, "/tables", url.Values{"name": {"ООО Ромашка"}, "inn": {"7701234567"}, "ogrn": {""}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), companyerrors.ErrMissingRequiredFields.Message)
		assert.Contains(t, w.Body.String(), `value="ООО Ромашка"`)
	})

	t.Run("whitespace field rejected by the service", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(company.Company{}, companyerrors.ErrMissingRequiredFields)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{Companies: []company.Company{}}, nil)

		w := postForm(r, "/tables", url.Values{"name": {"  "}, "inn": {"7701234567"}, "ogrn": {"1027700000000"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), companyerrors.ErrMissingRequiredFields.Message)
	})

	t.Run("valid row redirects back to the table", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		want := company.CreateCompanyRequest{Name: "ООО Ромашка", INN: "7701234567", OGRN: "1027700000000", Reestr: true}
		svc.EXPECT().Create(gomock.Any(), want).Return(company.Company{ID: 5}, nil).Times(1)

		w := postForm(r, "/tables", url.Values{"name": {want.Name}, "inn": {want.INN}, "ogrn": {want.OGRN}, "reestr": {"true"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tables", w.Header().Get("Location"))
	})
}

func TestPageHandler_Export(t *testing.T) {
	t.Run("exports the loaded page", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().List(gomock.Any(), company.ListQuery{Skip: 0, Limit: 2}).Return(company.ListResult{
			Companies: []company.Company{
				{ID: 1, Name: "ООО Ромашка", INN: "7701234567", Reestr: true},
				{ID: 2, Name: "АО Лютик", INN: "7800000000"},
			},
		}, nil)

		w := get(r, "/tables/export.xls?skip=0&limit=2")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, company.ExcelContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="companies_reestr.xls"`)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "filename*=UTF-8''")
		assert.Equal(t, 3, strings.Count(w.Body.String(), "<tr>"))
	})

	t.Run("xlsx workbook", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(company.ListResult{
			Companies: []company.Company{{ID: 1, Name: "ООО Ромашка"}},
		}, nil)

		w := get(r, "/tables/export.xlsx")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, company.XLSXContentType, w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	})
}

func TestPageHandler_Detail(t *testing.T) {
	t.Run("renders extended fields", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().GetDetails(gomock.Any(), int64(1)).Return(company.Company{
			ID: 1, Name: "ООО Ромашка", INN: "7701234567", Address: "Москва, ул. Ленина, 1", Reestr: true,
		}, nil)

		w := get(r, "/companies/1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Москва, ул. Ленина, 1")
		assert.Contains(t, w.Body.String(), "badge-yes")
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupPageRouter(t)

		w := get(r, "/companies/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), companyerrors.ErrInvalidCompanyID.Message)
	})

	t.Run("by inn", func(t *testing.T) {
		r, svc := setupPageRouter(t)
		svc.EXPECT().GetDetailsByINN(gomock.Any(), "7701234567").Return(company.Company{ID: 1, Name: "ООО Ромашка", INN: "7701234567"}, nil)

		w := get(r, "/companies/inn/7701234567")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ООО Ромашка")
	})

	t.Run("search redirects to inn page", func(t *testing.T) {
		r, _ := setupPageRouter(t)

		w := get(r, "/companies/inn?inn=+7701234567+")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/companies/inn/7701234567", w.Header().Get("Location"))
	})
}
