package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "insure-dw.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from the domain error
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.Internal(err)
	}

	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
	})
}
