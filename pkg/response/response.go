package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope 统一响应结构（创建/更新接口使用，与前端约定一致）
// status 取值: success | error | conflict
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusConflict = "conflict"
)

// ── 成功响应 ──

// OK 200 成功，直接返回数据本体（列表/详情接口）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建/更新成功信封
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Conflict 200 业务冲突信封（如邮箱重复）
// 注意：按约定冲突不是 HTTP 错误，状态码仍为 200
func Conflict(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Status:  StatusConflict,
		Message: message,
		Data:    data,
	})
}

// NoContent 204 删除成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── 错误响应 ──

// BadRequest 400 校验失败
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// NotFound 404 记录不存在（无信封，正文为空）
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// InternalError 500 持久化/并发失败信封，回显提交的记录
func InternalError(c *gin.Context, message, details string, data interface{}) {
	c.JSON(http.StatusInternalServerError, Envelope{
		Status:  StatusError,
		Message: message,
		Details: details,
		Data:    data,
	})
}
