package collection

import (
	"net/http"

	"github.com/dsp2b/dsp2b/internal/app/middleware"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/idgen"
	"github.com/dsp2b/dsp2b/pkg/response"

	collection_service "github.com/dsp2b/dsp2b/pkg/service/collection"

	"github.com/gin-gonic/gin"
)

// Handler 封装了收藏夹相关的 HTTP 处理器。
type Handler struct {
	svc *collection_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *collection_service.Service) *Handler {
	return &Handler{svc: svc}
}

// List 返回收藏夹列表。
// 支持 page / sort / keyword / view / root / user / blueprint 查询参数。
func (h *Handler) List(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	options := &model.ListCollectionsOptions{
		Page:     model.ParsePage(c.Query("page")),
		Sort:     model.ParseCollectionSort(c.Query("sort")),
		Keyword:  c.Query("keyword"),
		View:     c.Query("view"),
		RootOnly: c.Query("root") == "true",
	}

	// 按归属用户过滤。访问控制分支先于谓词构建：
	// 只有查看自己的收藏夹时才放开私有可见性。
	if userPublicID := c.Query("user"); userPublicID != "" {
		ownerID, entityType, err := idgen.DecodePublicID(userPublicID)
		if err != nil || entityType != idgen.EntityTypeUser {
			response.FailWithError(c, constant.ErrInvalidPublicID)
			return
		}
		options.OwnerID = ownerID
		options.IncludePrivate = viewerID != 0 && viewerID == ownerID
	}

	// 按关联蓝图过滤（该蓝图被收进了哪些收藏夹）
	if blueprintPublicID := c.Query("blueprint"); blueprintPublicID != "" {
		blueprintID, entityType, err := idgen.DecodePublicID(blueprintPublicID)
		if err != nil || entityType != idgen.EntityTypeBlueprint {
			response.FailWithError(c, constant.ErrInvalidPublicID)
			return
		}
		options.BlueprintID = blueprintID
	}

	result, err := h.svc.List(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "获取列表成功")
}

// ListMine 返回当前用户的收藏夹列表（含私有）。
func (h *Handler) ListMine(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	options := &model.ListCollectionsOptions{
		Page:           model.ParsePage(c.Query("page")),
		Sort:           model.ParseCollectionSort(c.Query("sort")),
		Keyword:        c.Query("keyword"),
		View:           c.Query("view"),
		RootOnly:       c.Query("root") == "true",
		OwnerID:        userID,
		IncludePrivate: true,
	}

	result, err := h.svc.List(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "获取列表成功")
}

// Tree 返回当前用户收藏夹的嵌套森林与树形选择器选项。
func (h *Handler) Tree(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	forest, options, err := h.svc.Tree(c.Request.Context(), userID, true)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, gin.H{
		"tree":    forest,
		"options": options,
	}, "获取成功")
}

// TreeOfUser 返回指定用户收藏夹的嵌套森林，非本人只含公开部分。
func (h *Handler) TreeOfUser(c *gin.Context) {
	ownerID, entityType, err := idgen.DecodePublicID(c.Param("id"))
	if err != nil || entityType != idgen.EntityTypeUser {
		response.FailWithError(c, constant.ErrInvalidPublicID)
		return
	}

	viewerID := middleware.CurrentUserID(c)
	includePrivate := viewerID != 0 && viewerID == ownerID

	forest, options, err := h.svc.Tree(c.Request.Context(), ownerID, includePrivate)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, gin.H{
		"tree":    forest,
		"options": options,
	}, "获取成功")
}

// Get 返回单个收藏夹。
func (h *Handler) Get(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	collection, err := h.svc.Get(c.Request.Context(), viewerID, c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, collection, "获取成功")
}

// Create 创建收藏夹。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	collection, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, collection, "创建成功")
}

// Update 更新收藏夹。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	collection, err := h.svc.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, collection, "更新成功")
}

// Delete 删除收藏夹。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "删除成功")
}

// Like 点赞收藏夹。
func (h *Handler) Like(c *gin.Context) {
	if err := h.svc.Like(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "点赞成功")
}

// Unlike 取消点赞收藏夹。
func (h *Handler) Unlike(c *gin.Context) {
	if err := h.svc.Unlike(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, nil, "已取消点赞")
}
