package blueprint

import (
	"fmt"
	"net/http"

	"github.com/dsp2b/dsp2b/internal/app/middleware"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/idgen"
	"github.com/dsp2b/dsp2b/pkg/response"

	blueprint_service "github.com/dsp2b/dsp2b/pkg/service/blueprint"

	"github.com/gin-gonic/gin"
)

// Handler 封装了蓝图相关的 HTTP 处理器。
type Handler struct {
	svc *blueprint_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *blueprint_service.Service) *Handler {
	return &Handler{svc: svc}
}

// List 返回蓝图列表。
// 支持 page / sort / keyword / tags / view / user / collection / sub 查询参数。
func (h *Handler) List(c *gin.Context) {
	options, err := h.parseListOptions(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	result, err := h.svc.List(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "获取列表成功")
}

// ListMine 返回当前用户的蓝图列表。
func (h *Handler) ListMine(c *gin.Context) {
	options, err := h.parseListOptions(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	options.OwnerID = middleware.CurrentUserID(c)

	result, err := h.svc.List(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "获取列表成功")
}

// parseListOptions 把查询参数解析为列表选项。
// 标签参数采用严格校验，非数字段整体拒绝。
func (h *Handler) parseListOptions(c *gin.Context) (*model.ListBlueprintsOptions, error) {
	tagIDs, err := blueprint_service.ParseTagIDs(c.Query("tags"))
	if err != nil {
		return nil, err
	}

	options := &model.ListBlueprintsOptions{
		Page:    model.ParsePage(c.Query("page")),
		Sort:    model.ParseBlueprintSort(c.Query("sort")),
		Keyword: c.Query("keyword"),
		TagIDs:  tagIDs,
		View:    c.Query("view"),
	}

	if userPublicID := c.Query("user"); userPublicID != "" {
		ownerID, entityType, err := idgen.DecodePublicID(userPublicID)
		if err != nil || entityType != idgen.EntityTypeUser {
			return nil, constant.ErrInvalidPublicID
		}
		options.OwnerID = ownerID
	}

	// collection 限定某收藏夹的成员；sub=true 时沿根捷径覆盖整棵子树
	if collectionPublicID := c.Query("collection"); collectionPublicID != "" {
		collectionID, entityType, err := idgen.DecodePublicID(collectionPublicID)
		if err != nil || entityType != idgen.EntityTypeCollection {
			return nil, constant.ErrInvalidPublicID
		}
		options.CollectionID = collectionID
		options.IncludeDescendants = c.Query("sub") == "true"
	}

	return options, nil
}

// Get 返回蓝图详情。
func (h *Handler) Get(c *gin.Context) {
	blueprint, tags, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, gin.H{
		"blueprint": blueprint,
		"tags":      tags,
	}, "获取成功")
}

// Create 创建蓝图。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	blueprint, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, blueprint, "创建成功")
}

// Update 更新蓝图。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	blueprint, err := h.svc.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, blueprint, "更新成功")
}

// Delete 删除蓝图。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "删除成功")
}

// Copy 返回蓝图串并累加复制计数。登录用户按用户去重，游客按 IP 去重。
func (h *Handler) Copy(c *gin.Context) {
	visitorKey := middleware.GetClientIP(c)
	if userID := middleware.CurrentUserID(c); userID != 0 {
		visitorKey = fmt.Sprintf("u%d", userID)
	}

	payload, err := h.svc.Copy(c.Request.Context(), visitorKey, c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, gin.H{"payload": payload}, "获取成功")
}

// Like 点赞蓝图。
func (h *Handler) Like(c *gin.Context) {
	if err := h.svc.Like(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "点赞成功")
}

// Unlike 取消点赞蓝图。
func (h *Handler) Unlike(c *gin.Context) {
	if err := h.svc.Unlike(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "已取消点赞")
}

type collectRequest struct {
	CollectionID string `json:"collection_id" binding:"required"`
}

// Collect 把蓝图加入当前用户的收藏夹。
func (h *Handler) Collect(c *gin.Context) {
	var req collectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	err := h.svc.AddToCollection(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req.CollectionID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "收藏成功")
}

// Uncollect 把蓝图从收藏夹中移除。
func (h *Handler) Uncollect(c *gin.Context) {
	collectionID := c.Query("collection_id")
	if collectionID == "" {
		response.Fail(c, http.StatusBadRequest, "collection_id 不能为空")
		return
	}

	err := h.svc.RemoveFromCollection(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), collectionID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "已取消收藏")
}
