package controller

import (
	"context"
	"motorkeys_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB         *gorm.DB
	Redis      *redis.Client
	FFmpegPath string
	// ffmpegVersion 便于测试替换
	ffmpegVersion func(string) (string, error)
}

// NewHealthController rdb 为 nil 表示未启用 Redis
func NewHealthController(db *gorm.DB, rdb *redis.Client, ffmpegPath string) *HealthController {
	return &HealthController{
		DB:            db,
		Redis:         rdb,
		FFmpegPath:    ffmpegPath,
		ffmpegVersion: util.GetFFmpegVersion,
	}
}

// @Summary 健康检查
// @Description 检查数据库、Redis 和 ffmpeg 状态，ffmpeg 不可用只影响手语上传
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	components := gin.H{"database": "up", "redis": "disabled"}

	if c.Redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.Redis.Ping(pingCtx).Err(); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Redis unavailable")
			return
		}
		components["redis"] = "up"
	}

	if version, err := c.ffmpegVersion(c.FFmpegPath); err != nil {
		components["ffmpeg"] = "unavailable"
	} else {
		components["ffmpeg"] = version
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
