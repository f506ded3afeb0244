// Package handlers binds HTTP requests to the service layer. Handlers stay
// thin: parse, delegate, write the envelope.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/httperr"
)

// bindError reports a request-shape failure. Field-level validation errors
// come from the services with their own codes.
func bindError(c *gin.Context, err error) {
	httperr.Write(c, http.StatusBadRequest, "invalid_request", err.Error())
}
