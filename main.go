// @title SkillerSET API
// @version 1.0
// @description SkillerSET 编程教程站点的只读内容接口与测验计分。

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"flag"
	"log"
	"skillerset/internal/app"
	"skillerset/internal/config"
	"skillerset/pkg/logger"
)

func main() {
	// 命令行参数
	checkContent := flag.Bool("check-content", false, "只加载并校验内容，完成后退出")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.CheckContentOnly = *checkContent
	cfg.MigrateOnly = *migrateOnly

	if cfg.CheckContentOnly {
		stats, err := app.CheckContent(cfg)
		if err != nil {
			log.Fatalf("Content check failed:\n%v", err)
		}
		log.Printf("Content OK: %d files, %d tutorials, %d problems", stats.Files, stats.Tutorials, stats.Problems)
		return
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		application.Close(context.Background())
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
