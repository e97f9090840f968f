// internal/app/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/dsp2b/dsp2b/internal/pkg/auth"
	"github.com/dsp2b/dsp2b/pkg/response"
	service_auth "github.com/dsp2b/dsp2b/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	authSvc *service_auth.Service
}

func NewMiddleware(authSvc *service_auth.Service) *Middleware {
	return &Middleware{authSvc: authSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.authSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional 是一个可选的JWT认证中间件。
// 没有Token时按游客放行；携带了Token但无效时返回401，触发前端刷新登录态。
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		claims, err := m.authSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Token已过期")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserID 从上下文中取出当前用户的数据库 ID，游客返回 0。
func CurrentUserID(c *gin.Context) uint {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return 0
	}
	userID, err := service_auth.UserIDFromClaims(claims)
	if err != nil {
		return 0
	}
	return userID
}
