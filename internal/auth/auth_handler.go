package auth

import (
	"net/http"

	"go-reestr/internal/middleware"
	"go-reestr/internal/shared/apperror"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionMaxAge = 86400

// Handler is the stub login page. Any well-formed email and non-empty
// password sign in; nothing is checked against a user store.
type Handler struct {
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{secureCookies: secureCookies, logger: l}
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", web.Page(c, "Вход", nil))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		c.HTML(httpErr.Status, "auth.html", web.Page(c, "Вход", gin.H{
			"Error": httpErr.Message,
			"Email": req.Email,
		}))
		return
	}

	h.setCookie(c, middleware.AuthCookie, "true", sessionMaxAge)
	h.setCookie(c, middleware.UserEmailCookie, req.Email, sessionMaxAge)

	h.logger.Info("user signed in", zap.String("email", req.Email))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AuthCookie, "", -1)
	h.setCookie(c, middleware.UserEmailCookie, "", -1)

	c.Redirect(http.StatusSeeOther, "/auth")
}
