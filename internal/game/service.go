package game

import (
	"math"
	"strings"
)

const (
	// DefaultPlayerName 是未提供或为空的玩家名的替代值
	DefaultPlayerName = "Player"
	// MaxPlayerNameLength 是玩家名的最大长度
	MaxPlayerNameLength = 50
	// MaxListLimit 是所有列表查询的上限，超出的请求值会被静默收紧
	MaxListLimit = 100
)

// PlayerStats 是玩家的聚合统计结果。
// 玩家没有任何记录时所有数值字段为0，而不是错误。
type PlayerStats struct {
	PlayerName        string  `json:"player_name"`
	TotalGames        int64   `json:"total_games"`
	BestScore         int     `json:"best_score"`
	AverageScore      float64 `json:"average_score"`
	TotalTimePlayed   float64 `json:"total_time_played"`
	TotalFoodEaten    int64   `json:"total_food_eaten"`
	TotalBonusesEaten int64   `json:"total_bonuses_eaten"`
	LongestSnake      int     `json:"longest_snake"`
}

// NormalizePlayerName 去掉玩家名两侧的空白。
// 结果为空时静默替换为默认名，这是规范化而不是拒绝。
func NormalizePlayerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// ClampLimit 将请求的列表长度收紧到合法范围。
// 小于1的值回落到默认值，超过上限的值收紧到上限。
func ClampLimit(requested, defaultLimit int) int {
	if requested < 1 {
		return defaultLimit
	}
	if requested > MaxListLimit {
		return MaxListLimit
	}
	return requested
}

// round1 四舍五入到1位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RecordResult 持久化一条已通过校验的游戏结果。
// 写入成功后result中会带有数据库分配的ID和PlayedAt。
func RecordResult(result *GameResult) error {
	result.PlayerName = NormalizePlayerName(result.PlayerName)
	return insertAndReload(result)
}

// GetHistory 返回一个玩家最近的若干局游戏，从新到旧。
func GetHistory(playerName string, limit int) ([]GameResult, error) {
	return queryHistory(NormalizePlayerName(playerName), limit)
}

// GetStats 汇总一个玩家全部游戏的统计数据。
func GetStats(playerName string) (*PlayerStats, error) {
	playerName = NormalizePlayerName(playerName)
	row, err := queryStats(playerName)
	if err != nil {
		return nil, err
	}
	return &PlayerStats{
		PlayerName:        playerName,
		TotalGames:        row.TotalGames,
		BestScore:         row.BestScore,
		AverageScore:      round1(row.AverageScore),
		TotalTimePlayed:   round1(row.TotalTime),
		TotalFoodEaten:    row.TotalFood,
		TotalBonusesEaten: row.TotalBonuses,
		LongestSnake:      row.LongestLength,
	}, nil
}

// ClearHistory 永久删除一个玩家的全部记录，返回删除的行数。
// 该操作不可逆，确认逻辑是前端的职责。
func ClearHistory(playerName string) (int64, error) {
	return deleteByPlayer(NormalizePlayerName(playerName))
}
