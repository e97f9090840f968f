// internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dsp2b/dsp2b/internal/app/middleware"
	auth_handler "github.com/dsp2b/dsp2b/pkg/handler/auth"
	blueprint_handler "github.com/dsp2b/dsp2b/pkg/handler/blueprint"
	collection_handler "github.com/dsp2b/dsp2b/pkg/handler/collection"
	tag_handler "github.com/dsp2b/dsp2b/pkg/handler/tag"
	user_handler "github.com/dsp2b/dsp2b/pkg/handler/user"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler       *auth_handler.Handler
	userHandler       *user_handler.Handler
	blueprintHandler  *blueprint_handler.Handler
	collectionHandler *collection_handler.Handler
	tagHandler        *tag_handler.Handler
	mw                *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.Handler,
	userHandler *user_handler.Handler,
	blueprintHandler *blueprint_handler.Handler,
	collectionHandler *collection_handler.Handler,
	tagHandler *tag_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		userHandler:       userHandler,
		blueprintHandler:  blueprintHandler,
		collectionHandler: collectionHandler,
		tagHandler:        tagHandler,
		mw:                mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
func (r *Router) Setup(engine *gin.Engine) {
	api := engine.Group("/api", NoCacheMiddleware())

	r.registerAuthRoutes(api)
	r.registerUserRoutes(api)
	r.registerBlueprintRoutes(api)
	r.registerCollectionRoutes(api)
	r.registerTagRoutes(api)
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		// 注册走独立限流，防脚本批量注册
		authGroup.POST("/register", middleware.WriteRateLimit(3, 6), r.authHandler.Register)
		authGroup.POST("/login", middleware.WriteRateLimit(10, 20), r.authHandler.Login)
	}
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	userGroup := api.Group("/user")
	{
		userGroup.GET("/me", r.mw.JWTAuth(), r.userHandler.Me)

		// 当前用户名下的资源
		userGroup.GET("/blueprint", r.mw.JWTAuth(), r.blueprintHandler.ListMine)
		userGroup.GET("/collection", r.mw.JWTAuth(), r.collectionHandler.ListMine)
		userGroup.GET("/collection/tree", r.mw.JWTAuth(), r.collectionHandler.Tree)

		// 公开资料
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.GET("/:id/collection/tree", r.mw.JWTAuthOptional(), r.collectionHandler.TreeOfUser)
	}
}

func (r *Router) registerBlueprintRoutes(api *gin.RouterGroup) {
	blueprintGroup := api.Group("/blueprint")
	{
		blueprintGroup.GET("", r.mw.JWTAuthOptional(), r.blueprintHandler.List)
		blueprintGroup.GET("/:id", r.blueprintHandler.Get)
		blueprintGroup.POST("/:id/copy", r.mw.JWTAuthOptional(), r.blueprintHandler.Copy)

		authed := blueprintGroup.Group("", r.mw.JWTAuth())
		{
			authed.POST("", middleware.WriteRateLimit(10, 20), r.blueprintHandler.Create)
			authed.PUT("/:id", r.blueprintHandler.Update)
			authed.DELETE("/:id", r.blueprintHandler.Delete)
			authed.POST("/:id/like", r.blueprintHandler.Like)
			authed.DELETE("/:id/like", r.blueprintHandler.Unlike)
			authed.POST("/:id/collect", r.blueprintHandler.Collect)
			authed.DELETE("/:id/collect", r.blueprintHandler.Uncollect)
		}
	}
}

func (r *Router) registerCollectionRoutes(api *gin.RouterGroup) {
	collectionGroup := api.Group("/collection")
	{
		collectionGroup.GET("", r.mw.JWTAuthOptional(), r.collectionHandler.List)
		collectionGroup.GET("/:id", r.mw.JWTAuthOptional(), r.collectionHandler.Get)

		authed := collectionGroup.Group("", r.mw.JWTAuth())
		{
			authed.POST("", middleware.WriteRateLimit(10, 20), r.collectionHandler.Create)
			authed.PUT("/:id", r.collectionHandler.Update)
			authed.DELETE("/:id", r.collectionHandler.Delete)
			authed.POST("/:id/like", r.collectionHandler.Like)
			authed.DELETE("/:id/like", r.collectionHandler.Unlike)
		}
	}
}

func (r *Router) registerTagRoutes(api *gin.RouterGroup) {
	tagGroup := api.Group("/tag")
	{
		tagGroup.GET("", r.tagHandler.List)
		tagGroup.GET("/resolve", r.tagHandler.Resolve)
	}
}
