package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/pkg/utils"
)

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest("invalid " + name)
	}
	return uint(id), nil
}

// pagination reads ?page= and ?limit= query parameters
func pagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return utils.GetPaginationParams(page, limit)
}
