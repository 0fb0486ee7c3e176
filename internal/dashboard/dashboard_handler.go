package dashboard

import (
	"net/http"

	"go-reestr/internal/shared/apperror"
	"go-reestr/internal/shared/response"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Page(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("dashboard load failed", zap.Error(err))
		c.HTML(httpErr.Status, "dashboard.html", web.Page(c, "Дашборд", gin.H{
			"Error": httpErr.Message,
		}))
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", web.Page(c, "Дашборд", gin.H{
		"Summary": summary,
	}))
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.logger.Warn("dashboard summary failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary, nil)
}
