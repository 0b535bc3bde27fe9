// @title MotorKeys 后端 API
// @version 1.0
// @description Reading Hero 词库、学习者运动画像、自建单词与手语录像服务。

// @license.name MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"
	"motorkeys_backend/internal/app"
	"motorkeys_backend/internal/config"
	"motorkeys_backend/pkg/logger"
	"path/filepath"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	application.Run(filepath.Join(*configDir, "config.yaml"))
}
