package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/pagination"
)

// Envelope is the uniform response wrapper returned by every operation.
type Envelope struct {
	Status  int  `json:"status"`
	Data    any  `json:"data"`
	Success bool `json:"success"`
}

type ListData struct {
	Records    any             `json:"records"`
	Pagination pagination.Meta `json:"pagination"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Status:  http.StatusOK,
		Data:    data,
		Success: true,
	})
}

func List(c *gin.Context, records any, meta pagination.Meta) {
	OK(c, ListData{
		Records:    records,
		Pagination: meta,
	})
}
