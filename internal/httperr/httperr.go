package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// PaymentRequired reports a processor decline the user can correct and retry.
func PaymentRequired(c *gin.Context, code, message string) {
	Write(c, http.StatusPaymentRequired, code, message)
}

// BadGateway reports an unreachable or misbehaving external provider.
func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}
