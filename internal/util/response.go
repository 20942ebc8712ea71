package util

import (
	"errors"
	"net/http"
	"skillerset/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	List  interface{} `json:"list"`
	Total int         `json:"total"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	InternalServerError(c)
}

// ErrorStatus 将业务错误映射为 HTTP 状态码
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrTutorialNotFound), errors.Is(err, ErrProblemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidDifficulty), errors.Is(err, ErrInvalidIndex), errors.Is(err, ErrNotToggleable):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoSession):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// HandleError 业务错误返回对应状态码，其余记录日志后返回 500
func HandleError(c *gin.Context, err error) {
	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		LogInternalError(c, err)
		return
	}
	Error(c, status, err.Error())
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
