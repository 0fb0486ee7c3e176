package company

import (
	"net/http"
	"strconv"

	companyerrors "go-reestr/internal/company/errors"
	"go-reestr/internal/shared/apperror"
	"go-reestr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Warn("company request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.FromError(c, err)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	meta := response.NewPaginationMeta(len(result.Companies), result.Skip, result.Limit)
	response.Success(c, http.StatusOK, result.Companies, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseCompanyID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	comp, err := h.service.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) GetByINN(c *gin.Context) {
	comp, err := h.service.GetDetailsByINN(c.Request.Context(), c.Param("inn"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comp, nil)
}

func parseCompanyID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, companyerrors.ErrInvalidCompanyID
	}
	return id, nil
}
