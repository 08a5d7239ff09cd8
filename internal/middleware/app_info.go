package middleware

import (
	"github.com/haierkeys/quicknote/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfo 注入应用名称与版本，响应头带上版本号
func AppInfo(name string, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))
		c.Header("X-QuickNote-Version", version)

		c.Next()
	}
}
