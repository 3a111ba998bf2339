package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/snake-game-backend/api"
	"github.com/SlpAus/snake-game-backend/internal/game"
	"github.com/SlpAus/snake-game-backend/internal/leaderboard"
	"github.com/SlpAus/snake-game-backend/internal/platform/config"
	"github.com/SlpAus/snake-game-backend/internal/platform/database"
	"github.com/SlpAus/snake-game-backend/internal/platform/health"
	"github.com/SlpAus/snake-game-backend/internal/platform/middleware"
	"github.com/SlpAus/snake-game-backend/internal/platform/shutdown"
	"github.com/SlpAus/snake-game-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载.env和配置文件
	if err := godotenv.Load(); err != nil {
		fmt.Println("未找到.env文件，直接读取环境变量")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败，无法启动: %v", err))
	}

	// 2. 初始化数据库连接并完成表迁移
	database.InitDB(cfg.Database)
	game.ConfigureModule(cfg.Game)
	leaderboard.ConfigureModule(cfg.Game)
	if err := game.PrimeDB(); err != nil {
		panic(fmt.Sprintf("数据库初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	health.PerformCheck()

	// 4. 异步启动后台的持续健康检查器
	lifecycleManager := lifecycle.NewManager()
	healthHandle, err := lifecycleManager.NewServiceHandle("db-health-checker")
	if err != nil {
		panic(fmt.Sprintf("注册健康检查服务失败: %v", err))
	}
	go health.StartDBHealthCheck(healthHandle)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 5. 阻塞等待停机信号，并执行优雅停机
	coordinator := shutdown.NewCoordinator(lifecycleManager)
	coordinator.ListenForSignalsAndShutdown(server)
}
