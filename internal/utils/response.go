package utils

import (
	"net/http"

	"github.com/Dittner/DerTutor/internal/apperr"
	"github.com/Dittner/DerTutor/internal/models"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, models.Response{
		StatusCode: code,
		Message:    message,
		Data:       nil,
	})
}

// ServiceError maps a classified service-layer error to its fixed HTTP
// status. Internal errors keep only an opaque detail string.
func ServiceError(c *gin.Context, err error) {
	Error(c, apperr.StatusCode(err), err.Error())
}

func ValidationError(c *gin.Context, err error) {
	Error(c, http.StatusUnprocessableEntity, err.Error())
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication is required"
	}
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
