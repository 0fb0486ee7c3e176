package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-reestr/internal/auth"
	"go-reestr/internal/middleware"
	"go-reestr/internal/shared/apperror"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.SessionUser())
	auth.RegisterRoutes(r, auth.NewHandler(false, zap.NewNop()))
	return r
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func postLogin(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_LoginPage(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="password"`)
}

func TestHandler_Login(t *testing.T) {
	t.Run("any credentials sign in", func(t *testing.T) {
		r := setupRouter()

		w := postLogin(r, url.Values{"email": {"user@example.com"}, "password": {"whatever"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		authed := cookieByName(cookies, middleware.AuthCookie)
		require.NotNil(t, authed)
		assert.Equal(t, "true", authed.Value)
		email := cookieByName(cookies, middleware.UserEmailCookie)
		require.NotNil(t, email)
		assert.Equal(t, "user@example.com", email.Value)
	})

	t.Run("invalid email re-renders the form", func(t *testing.T) {
		r := setupRouter()

		w := postLogin(r, url.Values{"email": {"not-an-email"}, "password": {"x"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Поле «Email» должно содержать адрес почты")
		assert.Nil(t, cookieByName(w.Result().Cookies(), middleware.AuthCookie))
	})

	t.Run("missing password", func(t *testing.T) {
		r := setupRouter()

		w := postLogin(r, url.Values{"email": {"user@example.com"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Поле «Пароль» обязательно для заполнения")
	})
}

func TestHandler_Logout(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookie, Value: "true"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	authed := cookieByName(w.Result().Cookies(), middleware.AuthCookie)
	require.NotNil(t, authed)
	assert.Equal(t, "", authed.Value)
	assert.True(t, authed.MaxAge < 0)
}
