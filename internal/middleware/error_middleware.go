package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
)

// HandleAPIError maps an application error to its HTTP status and writes
// the error body. Unknown errors are reported as 500 without details.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, code := http.StatusInternalServerError, dto.ErrorCodeInternalServer
	switch apperrors.KindOf(err) {
	case apperrors.ErrResourceNotFound:
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case apperrors.ErrValidationFailed:
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case apperrors.ErrBadRequest:
		status, code = http.StatusBadRequest, dto.ErrorCodeBadRequest
	default:
		c.JSON(status, dto.NewErrorResponse(code, "Internal server error"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(code, apperrors.Message(err)))
}
