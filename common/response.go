package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应体，字段与 dashboard 约定一致
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success 直接返回业务对象，不再包一层 code/data
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func ErrorWithHttpStatus(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	ErrorWithHttpStatus(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	ErrorWithHttpStatus(c, http.StatusNotFound, "Not Found")
}

func ServiceUnavailable(c *gin.Context, message string) {
	ErrorWithHttpStatus(c, http.StatusServiceUnavailable, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorWithHttpStatus(c, http.StatusInternalServerError, message)
}
