package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-admin/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// maxBytes: 允许的最大请求体字节数
// 上限需容纳咖啡店 logo 的 base64 编码（典型几百 KB）
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				c.JSON(http.StatusRequestEntityTooLarge, response.Envelope{
					Status:  response.StatusError,
					Message: "请求体过大",
				})
				return
			}
		}
	}
}
