package app

import (
	"motorkeys_backend/docs"
	"motorkeys_backend/internal/config"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/monitoring"
	"motorkeys_backend/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// uploadBodyLimit base64 膨胀约 4/3，另留出 JSON 字段的余量
func uploadBodyLimit(maxBytes func() int64) func() int64 {
	return func() int64 {
		return maxBytes()*4/3 + 64<<10
	}
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 本地存储的图片和视频
	if cfg.Storage.Type == util.StorageLocal && strings.HasPrefix(cfg.Storage.PublicURL, "/") {
		router.Static(cfg.Storage.PublicURL, cfg.Storage.LocalPath)
	}

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	a.registerCatalogRoutes(api, c)
	a.registerLearnerRoutes(api, c)
	a.registerUGCRoutes(api, c)
	a.registerSignRoutes(api, c)
}

func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	words := rg.Group("/words")
	{
		words.GET("", c.word.ListWords)
		words.GET("/stats", c.word.Stats)
		words.GET("/:id", c.word.GetWord)
		words.GET("/:id/lists", c.word.GetWordLists)
	}

	lists := rg.Group("/word-lists")
	{
		lists.GET("", c.word.ListWordLists)
		lists.GET("/:id", c.word.GetWordList)
		lists.GET("/:id/words", c.word.GetWordListWords)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	learners := rg.Group("/learners")
	{
		learners.POST("", c.learner.CreateLearner)
		learners.GET("", c.learner.ListLearners)
		learners.GET("/:id", c.learner.GetLearner)
		learners.POST("/:id/attempts", c.learner.RecordAttempt)
		learners.GET("/:id/motor", c.learner.GetMotorStats)
	}
}

func (a *App) registerUGCRoutes(rg *gin.RouterGroup, c *controllers) {
	ugc := rg.Group("/ugc")
	{
		ugc.POST("/word", security.MaxBody(uploadBodyLimit(a.services.ugc.MaxImageBytes)), c.ugc.SaveWord)
		ugc.GET("/words", c.ugc.ListWords)
		ugc.GET("/word/:id", c.ugc.GetWord)
		ugc.PATCH("/word/:id", c.ugc.SetActive)
		ugc.DELETE("/word/:id", c.ugc.DeleteWord)
	}
}

func (a *App) registerSignRoutes(rg *gin.RouterGroup, c *controllers) {
	signs := rg.Group("/signs")
	{
		signs.POST("/upload", security.MaxBody(uploadBodyLimit(a.services.sign.MaxVideoBytes)), c.sign.Upload)
		signs.GET("/list", c.sign.List)
		signs.PATCH("/:word", c.sign.UpdateStatus)
	}
}
