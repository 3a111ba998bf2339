package leaderboard

import (
	"net/http"
	"strconv"

	"github.com/SlpAus/snake-game-backend/internal/game"
	"github.com/gin-gonic/gin"
)

// GetLeaderboardHandler 返回去重后的排行榜。
// limit未提供时使用配置的默认条目数，上限100。
func GetLeaderboardHandler(c *gin.Context) {
	limit := moduleConfig.LeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		requested, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit参数必须是整数"})
			return
		}
		limit = game.ClampLimit(requested, moduleConfig.LeaderboardSize)
	}

	board, err := GetLeaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询排行榜失败"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// GetPlayerPositionHandler 返回一个玩家的名次和最好成绩
func GetPlayerPositionHandler(c *gin.Context) {
	playerName := c.DefaultQuery("player_name", game.DefaultPlayerName)

	position, err := GetPlayerPosition(playerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询玩家名次失败"})
		return
	}

	c.JSON(http.StatusOK, position)
}
