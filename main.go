// @title 在线考试客户端 API
// @version 1.0
// @description 在线考试系统的本地客户端服务，代理后端接口并在本地维护考试会话。

// @host localhost:8090
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"exam_client/internal/app"
	"exam_client/internal/config"
	"exam_client/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	backend := flag.String("backend", "", "后端地址，覆盖配置文件中的 backend.base_url")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.Backend.BaseURL = *backend
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
