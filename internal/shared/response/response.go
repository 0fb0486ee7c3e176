package response

import (
	"go-reestr/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// PaginationMeta mirrors the skip/limit window the registry API pages by.
type PaginationMeta struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit,omitempty"`
}

func NewPaginationMeta(total, skip, limit int) PaginationMeta {
	return PaginationMeta{Total: total, Skip: skip, Limit: limit}
}

type Envelope struct {
	Ok    bool                `json:"ok"`
	Data  any                 `json:"data,omitempty"`
	Meta  *PaginationMeta     `json:"meta,omitempty"`
	Error *apperror.HTTPError `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, Envelope{Ok: true, Data: data, Meta: meta})
}

// FromError writes err with the status and code apperror.ToHTTP picks.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, Envelope{Ok: false, Error: &httpErr})
}

// Abort writes err and stops the handler chain.
func Abort(c *gin.Context, err error) {
	FromError(c, err)
	c.Abort()
}
