package response

import (
	"errors"
	"net/http"

	"github.com/dsp2b/dsp2b/pkg/constant"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 或 202 Accepted 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 按业务哨兵错误映射 HTTP 状态码，未识别的错误一律按 500 处理。
func FailWithError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, constant.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, constant.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, constant.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrInvalidPublicID),
		errors.Is(err, constant.ErrProductSortNoTag),
		errors.Is(err, constant.ErrInvalidTagID):
		code = http.StatusBadRequest
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		code = http.StatusUnauthorized
	}
	Fail(c, code, err.Error())
}
