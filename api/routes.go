package api

import (
	"github.com/SlpAus/snake-game-backend/internal/game"
	"github.com/SlpAus/snake-game-backend/internal/leaderboard"
	"github.com/SlpAus/snake-game-backend/internal/platform/health"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	// 健康检查，供负载均衡器和部署平台探活
	router.GET("/health", health.GetHealth)

	api := router.Group("/api")
	{
		// 游戏相关的路由组 /api/game
		gameRoutes := api.Group("/game")
		{
			gameRoutes.POST("/result", game.SaveGameResult)
			gameRoutes.GET("/stats", game.GetPlayerStats)
			gameRoutes.GET("/history", game.GetGameHistory)
			gameRoutes.DELETE("/history", game.ClearGameHistory)
		}

		// 排行榜相关的路由组 /api/leaderboard
		leaderboardRoutes := api.Group("/leaderboard")
		{
			leaderboardRoutes.GET("", leaderboard.GetLeaderboardHandler)
			leaderboardRoutes.GET("/position", leaderboard.GetPlayerPositionHandler)
		}
	}
}
