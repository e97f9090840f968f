// cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dsp2b/dsp2b/internal/app/bootstrap"
	"github.com/dsp2b/dsp2b/internal/app/middleware"
	"github.com/dsp2b/dsp2b/internal/app/task"
	"github.com/dsp2b/dsp2b/internal/infra/persistence/database"
	ent_impl "github.com/dsp2b/dsp2b/internal/infra/persistence/ent"
	"github.com/dsp2b/dsp2b/internal/infra/router"
	"github.com/dsp2b/dsp2b/pkg/catalog"
	"github.com/dsp2b/dsp2b/pkg/config"
	auth_handler "github.com/dsp2b/dsp2b/pkg/handler/auth"
	blueprint_handler "github.com/dsp2b/dsp2b/pkg/handler/blueprint"
	collection_handler "github.com/dsp2b/dsp2b/pkg/handler/collection"
	tag_handler "github.com/dsp2b/dsp2b/pkg/handler/tag"
	user_handler "github.com/dsp2b/dsp2b/pkg/handler/user"
	auth_service "github.com/dsp2b/dsp2b/pkg/service/auth"
	blueprint_service "github.com/dsp2b/dsp2b/pkg/service/blueprint"
	collection_service "github.com/dsp2b/dsp2b/pkg/service/collection"
	user_service "github.com/dsp2b/dsp2b/pkg/service/user"
	"github.com/dsp2b/dsp2b/pkg/service/utility"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	taskBroker *task.Broker
	sqlDB      *sql.DB
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp(content embed.FS) (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（失败时自动降级为无缓存模式）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 启动引导（密钥与 ID 编码器）---
	jwtSecret, err := bootstrap.EnsureSecurityConfig(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	// --- Phase 4: 初始化数据仓库层 ---
	userRepo := ent_impl.NewUserRepo(entClient)
	collectionRepo := ent_impl.NewCollectionRepo(entClient)
	blueprintRepo := ent_impl.NewBlueprintRepo(entClient)

	// --- Phase 5: 初始化业务逻辑层 ---
	itemCatalog, err := catalog.Load()
	if err != nil {
		return nil, cleanup, fmt.Errorf("加载物品目录失败: %w", err)
	}
	log.Printf("✅ 物品目录加载成功，共 %d 条。", itemCatalog.Size())

	cacheSvc := utility.NewCacheService(redisClient)
	authSvc := auth_service.NewService(userRepo, jwtSecret)
	userSvc := user_service.NewService(userRepo)
	collectionSvc := collection_service.NewService(collectionRepo, blueprintRepo)
	blueprintSvc := blueprint_service.NewService(blueprintRepo, collectionRepo, itemCatalog, cacheSvc)

	// 初始化任务调度器
	taskBroker := task.NewBroker(blueprintRepo)

	// --- Phase 6: 初始化表现层 (Handlers) ---
	mw := middleware.NewMiddleware(authSvc)
	authHandler := auth_handler.NewHandler(authSvc)
	userHandler := user_handler.NewHandler(userSvc)
	blueprintHandler := blueprint_handler.NewHandler(blueprintSvc)
	collectionHandler := collection_handler.NewHandler(collectionSvc)
	tagHandler := tag_handler.NewHandler(itemCatalog)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(
		authHandler,
		userHandler,
		blueprintHandler,
		collectionHandler,
		tagHandler,
		mw,
	)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	if err := engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())

	if _, err := content.ReadDir("assets/dist"); err != nil {
		log.Println("🔧 未找到 assets/dist 目录，跳过前端静态文件服务，只提供 API。")
	} else {
		router.SetupFrontend(engine, content)
	}
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		taskBroker: taskBroker,
		sqlDB:      sqlDB,
	}

	return app, cleanup, nil
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

func (a *App) Run() error {
	a.taskBroker.RegisterCronJobs()
	a.taskBroker.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8092"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.taskBroker != nil {
		a.taskBroker.Stop()
		log.Println("任务调度器已停止。")
	}
}
