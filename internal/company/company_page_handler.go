package company

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	companyerrors "go-reestr/internal/company/errors"
	"go-reestr/internal/shared/apperror"
	"go-reestr/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered table and detail views
type PageHandler struct {
	service Service
	logger  *zap.Logger
}

func NewPageHandler(service Service, logger ...*zap.Logger) *PageHandler {
	l := zap.L().Named("company.page")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.page")
	}
	return &PageHandler{service: service, logger: l}
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("page request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	c.HTML(httpErr.Status, "error.html", web.Page(c, "Ошибка", gin.H{
		"Status":  httpErr.Status,
		"Code":    httpErr.Code,
		"Message": httpErr.Message,
	}))
}

// renderTable loads the page of rows and renders the table view. A load
// failure replaces the table with the error message.
func (h *PageHandler) renderTable(c *gin.Context, status int, q ListQuery, form CreateCompanyRequest, formErr string) {
	data := gin.H{
		"Form":      form,
		"FormError": formErr,
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("table load failed", zap.Error(err))
		data["Error"] = httpErr.Message
		if status == http.StatusOK {
			status = httpErr.Status
		}
	} else {
		data["Companies"] = result.Companies
		data["Skip"] = result.Skip
		data["Limit"] = result.Limit
	}

	c.HTML(status, "tables.html", web.Page(c, "Таблицы", data))
}

func (h *PageHandler) Table(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, apperror.MapValidationError(err))
		return
	}

	h.renderTable(c, http.StatusOK, q, CreateCompanyRequest{}, "")
}

func (h *PageHandler) AddRow(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		msg := apperror.ToHTTP(apperror.MapValidationError(err)).Message
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msg = companyerrors.ErrMissingRequiredFields.Message
		}
		h.renderTable(c, http.StatusBadRequest, ListQuery{}, req, msg)
		return
	}

	comp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.renderTable(c, httpErr.Status, ListQuery{}, req, httpErr.Message)
		return
	}

	h.logger.Info("company added from table", zap.Int64("company_id", comp.ID))
	c.Redirect(http.StatusSeeOther, "/tables")
}

func (h *PageHandler) loadExportRows(c *gin.Context) ([]Company, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, apperror.MapValidationError(err))
		return nil, false
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	return result.Companies, true
}

func (h *PageHandler) ExportXLS(c *gin.Context) {
	rows, ok := h.loadExportRows(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", ContentDisposition(ExportFileName, ExportFileNameUnicode))
	c.Data(http.StatusOK, ExcelContentType, BuildExcelHTML(rows))
}

func (h *PageHandler) ExportXLSX(c *gin.Context) {
	rows, ok := h.loadExportRows(c)
	if !ok {
		return
	}

	body, err := BuildWorkbook(rows)
	if err != nil {
		h.renderError(c, apperror.Wrap(err, apperror.CodeInternalError, "Не удалось сформировать файл", http.StatusInternalServerError))
		return
	}

	c.Header("Content-Disposition", ContentDisposition(WorkbookFileName, WorkbookFileNameUTF8))
	c.Data(http.StatusOK, XLSXContentType, body)
}

func (h *PageHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(c, companyerrors.ErrInvalidCompanyID)
		return
	}

	comp, err := h.service.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "company.html", web.Page(c, comp.Name, gin.H{"Company": comp}))
}

func (h *PageHandler) DetailByINN(c *gin.Context) {
	comp, err := h.service.GetDetailsByINN(c.Request.Context(), c.Param("inn"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "company.html", web.Page(c, comp.Name, gin.H{"Company": comp}))
}

// SearchByINN redirects the header search form to the detail-by-INN page
func (h *PageHandler) SearchByINN(c *gin.Context) {
	inn := strings.TrimSpace(c.Query("inn"))
	if inn == "" {
		h.renderError(c, companyerrors.ErrINNRequired)
		return
	}
	c.Redirect(http.StatusSeeOther, "/companies/inn/"+url.PathEscape(inn))
}
