package tag

import (
	"github.com/dsp2b/dsp2b/pkg/catalog"
	"github.com/dsp2b/dsp2b/pkg/response"

	blueprint_service "github.com/dsp2b/dsp2b/pkg/service/blueprint"

	"github.com/gin-gonic/gin"
)

// Handler 对外暴露物品目录（标签候选集）。
type Handler struct {
	catalog *catalog.Catalog
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// List 返回全部物品条目，供前端标签选择器使用。
func (h *Handler) List(c *gin.Context) {
	response.Success(c, h.catalog.Items(), "获取成功")
}

// Resolve 把逗号分隔的标签 ID 解析为元数据，目录外的 ID 降级为空名称。
func (h *Handler) Resolve(c *gin.Context) {
	ids, err := blueprint_service.ParseTagIDs(c.Query("ids"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, h.catalog.Resolve(ids), "获取成功")
}
