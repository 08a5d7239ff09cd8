package errors

import (
	"errors"
	"net/http"
	"time"

	"github.com/haierkeys/quicknote/pkg/app"
	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/gin-gonic/gin"
)

// traceIDKey mirrors middleware.TraceIDKey; importing middleware here would be circular.
const traceIDKey = "trace_id"

// AppError 统一应用错误结构体
// 包含错误码、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Status always false for errors
	Status bool `json:"status"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// TraceID 请求追踪ID
	TraceID string `json:"traceId,omitempty"`
	// HTTPStatus 响应状态码（不序列化）
	HTTPStatus int `json:"-"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:       c.Code(),
		Message:    c.Msg(),
		Details:    c.Details(),
		HTTPStatus: c.StatusCode(),
		Cause:      cause,
		Timestamp:  time.Now(),
	}
}

// ErrorResponse 统一错误响应处理
// Converts err into an AppError and writes it with the matching HTTP status.
func ErrorResponse(c *gin.Context, err error) {
	traceID := c.GetString(traceIDKey)

	var appErr *AppError
	if errors.As(err, &appErr) {
		appErr.TraceID = traceID
		write(c, appErr)
		return
	}

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		resp := NewAppError(codeErr, err)
		resp.Message = app.Message(c, codeErr)
		resp.TraceID = traceID
		write(c, resp)
		return
	}

	// 未知错误，返回内部错误
	write(c, &AppError{
		Code:       code.ErrorServerInternal.Code(),
		Message:    app.Message(c, code.ErrorServerInternal),
		HTTPStatus: http.StatusInternalServerError,
		TraceID:    traceID,
		Cause:      err,
		Timestamp:  time.Now(),
	})
}

func write(c *gin.Context, e *AppError) {
	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.Set("status_code", status)
	c.JSON(status, e)
}

// GetAppError 从错误链中获取 AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
