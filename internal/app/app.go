package app

import (
	"context"
	"errors"
	"fmt"
	"motorkeys_backend/internal/catalog"
	"motorkeys_backend/internal/config"
	"motorkeys_backend/internal/controller"
	"motorkeys_backend/internal/repository"
	"motorkeys_backend/internal/service"
	"motorkeys_backend/pkg/configwatcher"
	"motorkeys_backend/pkg/database"
	"motorkeys_backend/pkg/logger"
	"motorkeys_backend/pkg/monitoring"
	"motorkeys_backend/pkg/security"
	"motorkeys_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	limiter         *security.RateLimiter
	configCallbacks []func(*config.Config)
	shutdownTracer  func(context.Context) error
}

type repositories struct {
	learner *repository.LearnerRepository
	ugc     *repository.UGCRepository
	sign    *repository.SignRepository
	recent  repository.RecentItemsStore
}

type services struct {
	storage *service.StorageService
	catalog *service.CatalogService
	learner *service.LearnerService
	ugc     *service.UGCService
	sign    *service.SignService
}

type controllers struct {
	word    *controller.WordController
	learner *controller.LearnerController
	ugc     *controller.UGCController
	sign    *controller.SignController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 将重新加载的配置分发给各回调
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		learner: repository.NewLearnerRepository(db),
		ugc:     repository.NewUGCRepository(db),
		sign:    repository.NewSignRepository(db),
	}
	// 未启用 Redis 时从输入历史推导最近单词
	if rdb != nil {
		repos.recent = repository.NewRedisRecentRepository(rdb, cfg.Redis.RecentLimit)
	} else {
		repos.recent = repository.NewAttemptRecentRepository(repos.learner, cfg.Redis.RecentLimit)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config, base *catalog.Catalog, processor service.VideoProcessor) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.catalog = service.NewCatalogService(base, repos.ugc, repos.sign)
	s.learner = service.NewLearnerService(repos.learner, repos.recent, s.catalog)
	s.ugc = service.NewUGCService(repos.ugc, s.storage, cfg.UGC.MaxImageBytes)
	s.sign = service.NewSignService(repos.sign, s.storage, processor, cfg.UGC.WorkDir, cfg.UGC.MaxVideoBytes)

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		word:    controller.NewWordController(s.catalog),
		learner: controller.NewLearnerController(s.learner),
		ugc:     controller.NewUGCController(s.ugc),
		sign:    controller.NewSignController(s.sign),
		health:  controller.NewHealthController(a.DB, a.Redis, cfg.UGC.FFmpegPath),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// registerReloadable 可热更新的配置：限流速率和上传大小
func (a *App) registerReloadable() {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		a.limiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
		a.services.ugc.SetLimits(cfg.UGC.MaxImageBytes)
		a.services.sign.SetLimits(cfg.UGC.MaxVideoBytes)
		logger.Log.Info("Runtime limits updated",
			zap.Int("rate_limit", cfg.RateLimit.MaxRequests),
			zap.Int64("max_image_bytes", cfg.UGC.MaxImageBytes),
			zap.Int64("max_video_bytes", cfg.UGC.MaxVideoBytes))
	})
}

// Build 用已打开的连接组装应用，rdb 可为 nil
func Build(cfg *config.Config, db *gorm.DB, rdb *redis.Client, processor service.VideoProcessor) (*App, error) {
	base, err := catalog.LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}
	stats := base.Stats()
	logger.Log.Info("Seed catalog loaded",
		zap.Int("words", stats.TotalWords),
		zap.Int("lists", stats.TotalLists))

	if processor == nil {
		processor = service.FFmpegProcessor{Path: cfg.UGC.FFmpegPath}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	app.services = app.initServices(repos, cfg, base, processor)
	controllers := app.initControllers(app.services, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)
	app.registerReloadable()

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate || cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db, Redis: rdb}
	}

	app, err := Build(cfg, db, rdb, nil)
	if err != nil {
		logger.Log.Fatal("Failed to build application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.shutdownTracer = shutdown
	}

	return app
}

// Run 启动服务并监听配置文件变化，收到中断信号后优雅退出
func (a *App) Run(configFile string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.limiter.Cleanup(ctx, time.Minute)

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			go func() {
				if err := configwatcher.Watch(ctx, configFile, a.ApplyConfig); err != nil {
					logger.Log.Error("Config watcher stopped", zap.Error(err))
				}
			}()
		} else {
			logger.Log.Info("Config file not found, hot reload disabled", zap.String("file", filepath.Clean(configFile)))
		}
	}

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.shutdownTracer != nil {
		if err := a.shutdownTracer(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
