// utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Application error codes carried in the error envelope.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidDate   = "INVALID_DATE"
	ErrCodeInvalidAction = "INVALID_ACTION"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeDuplicate     = "DUPLICATE_ERROR"
	ErrCodeAuth          = "AUTH_ERROR"
	ErrCodeServer        = "SERVER_ERROR"
)

// APIErrorBody is the "error" object of a failed response.
type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APISuccess writes the uniform success envelope:
// {"success": true, "data": ..., "message": ...}
func APISuccess(c *gin.Context, data interface{}, message string) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusOK, body)
}

// APIError writes the uniform error envelope with a caller-supplied status:
// {"success": false, "error": {"code": ..., "message": ...}}
func APIError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   APIErrorBody{Code: code, Message: message},
	})
}

func APIValidationError(c *gin.Context, message string) {
	APIError(c, http.StatusBadRequest, ErrCodeInvalidInput, message)
}

func APINotFoundError(c *gin.Context, message string) {
	APIError(c, http.StatusNotFound, ErrCodeNotFound, message)
}

func APIServerError(c *gin.Context, message string) {
	APIError(c, http.StatusInternalServerError, ErrCodeServer, message)
}

// APIAuthError aborts the request; it is used from middleware.
func APIAuthError(c *gin.Context, message string) {
	APIError(c, http.StatusUnauthorized, ErrCodeAuth, message)
	c.Abort()
}
