package auth

import (
	"net/http"

	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/response"

	auth_service "github.com/dsp2b/dsp2b/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 封装了注册登录相关的 HTTP 处理器。
type Handler struct {
	svc *auth_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *auth_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register 处理用户注册。
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, user, "注册成功")
}

// Login 处理用户登录并签发访问令牌。
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "登录成功")
}
