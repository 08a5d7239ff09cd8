package middleware

import (
	"github.com/haierkeys/quicknote/pkg/app"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NoFound answers unknown routes with ErrorNotFoundAPI; data names the method and path that missed.
// NoFound 未匹配路由返回 404，data 中带上请求方法与路径
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToResponse(code.ErrorNotFoundAPI.WithData(map[string]string{
			logger.FieldMethod: c.Request.Method,
			logger.FieldPath:   c.Request.URL.Path,
		}))
		c.Abort()
	}
}
