package game

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SaveResultRequestBody 定义了前端提交游戏结果时，请求体的JSON结构。
// score和duration使用指针类型，以便区分"未提供"和合法的零值。
type SaveResultRequestBody struct {
	PlayerName   string   `json:"player_name" binding:"max=50"`
	Score        *int     `json:"score" binding:"required,gte=0"`
	Duration     *float64 `json:"duration" binding:"required,gte=0"`
	MaxLength    *int     `json:"max_length" binding:"omitempty,gte=1"`
	FoodEaten    *int     `json:"food_eaten" binding:"omitempty,gte=0"`
	BonusesEaten *int     `json:"bonuses_eaten" binding:"omitempty,gte=0"`
}

// ClearHistoryResponse 是清空历史接口的响应结构
type ClearHistoryResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Deleted int64  `json:"deleted"`
}

// parseLimitQuery 解析并收紧limit查询参数。
// 参数不是整数时返回false，调用方应当中止请求。
func parseLimitQuery(c *gin.Context, defaultLimit int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	requested, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit参数必须是整数"})
		return 0, false
	}
	return ClampLimit(requested, defaultLimit), true
}

// SaveGameResult 处理前端在游戏结束时提交的结果
func SaveGameResult(c *gin.Context) {
	var body SaveResultRequestBody

	// 1. 绑定并验证请求体，任何违规都在写入前拒绝
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数无效: " + err.Error()})
		return
	}

	// 2. 组装持久化模型，可选字段使用默认值
	result := GameResult{
		PlayerName: body.PlayerName,
		Score:      *body.Score,
		Duration:   *body.Duration,
		MaxLength:  1,
	}
	if body.MaxLength != nil {
		result.MaxLength = *body.MaxLength
	}
	if body.FoodEaten != nil {
		result.FoodEaten = *body.FoodEaten
	}
	if body.BonusesEaten != nil {
		result.BonusesEaten = *body.BonusesEaten
	}

	// 3. 写入数据库，返回带ID和played_at的完整记录
	if err := RecordResult(&result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存游戏结果失败"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetPlayerStats 返回一个玩家的聚合统计。
// 没有任何记录的玩家得到全零的成功响应，而不是404。
func GetPlayerStats(c *gin.Context) {
	playerName := c.DefaultQuery("player_name", DefaultPlayerName)

	stats, err := GetStats(playerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询玩家统计失败"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetGameHistory 返回一个玩家最近的游戏记录，从新到旧
func GetGameHistory(c *gin.Context) {
	playerName := c.DefaultQuery("player_name", DefaultPlayerName)
	limit, ok := parseLimitQuery(c, moduleConfig.HistorySize)
	if !ok {
		return
	}

	history, err := GetHistory(playerName, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询历史记录失败"})
		return
	}

	c.JSON(http.StatusOK, history)
}

// ClearGameHistory 删除一个玩家的全部记录
func ClearGameHistory(c *gin.Context) {
	playerName := c.DefaultQuery("player_name", DefaultPlayerName)

	deleted, err := ClearHistory(playerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "清空历史记录失败"})
		return
	}

	c.JSON(http.StatusOK, ClearHistoryResponse{
		Message: "已删除 " + strconv.FormatInt(deleted, 10) + " 条记录",
		Success: true,
		Deleted: deleted,
	})
}
