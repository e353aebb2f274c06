package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/pkg/apperrors"
)

// parseID reads the :id path parameter
func parseID(ctx *gin.Context, entity string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("%s ID must be a valid number", entity))
	}
	return id, nil
}
