package user

import (
	"net/http"

	"github.com/dsp2b/dsp2b/internal/app/middleware"
	"github.com/dsp2b/dsp2b/pkg/response"

	user_service "github.com/dsp2b/dsp2b/pkg/service/user"

	"github.com/gin-gonic/gin"
)

// Handler 封装了用户资料相关的 HTTP 处理器。
type Handler struct {
	svc *user_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *user_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Me 返回当前登录用户的资料。
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		response.Fail(c, http.StatusUnauthorized, "未登录")
		return
	}

	user, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, user, "获取成功")
}

// Get 按公共 ID 返回用户公开资料。
func (h *Handler) Get(c *gin.Context) {
	user, err := h.svc.GetByPublicID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, user, "获取成功")
}
