// internal/infra/router/frontend_router.go
package router

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupFrontend 托管内嵌的前端构建产物。
// 未命中的非 API 路径回落到 index.html，由前端路由接管。
func SetupFrontend(engine *gin.Engine, content embed.FS) {
	distFS, err := fs.Sub(content, "assets/dist")
	if err != nil {
		log.Printf("警告: 获取内嵌前端资源失败: %v，仅提供 API 服务", err)
		return
	}

	engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "接口不存在"})
			return
		}

		filePath := strings.TrimPrefix(path, "/")
		if filePath != "" && filePath != "index.html" {
			if f, err := distFS.Open(filePath); err == nil {
				f.Close()
				c.FileFromFS(filePath, http.FS(distFS))
				return
			}
		}

		index, err := fs.ReadFile(distFS, "index.html")
		if err != nil {
			c.String(http.StatusNotFound, "前端资源缺失")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
