package leaderboard

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SlpAus/snake-game-backend/internal/game"
	"github.com/SlpAus/snake-game-backend/internal/platform/database"
)

// Entry 是排行榜中的一条记录。
// 每个玩家最多出现一次，对应其个人最好成绩的那一局。
type Entry struct {
	Rank       int       `json:"rank"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Duration   float64   `json:"duration"`
	PlayedAt   time.Time `json:"played_at"`
}

// Leaderboard 是排行榜接口的完整响应。
// TotalGames和TotalPlayers不受limit影响，统计的是整个存储。
type Leaderboard struct {
	Entries      []Entry `json:"entries"`
	TotalGames   int64   `json:"total_games"`
	TotalPlayers int64   `json:"total_players"`
}

// Position 描述一个玩家在所有玩家的最好成绩中的排名。
// 玩家没有任何记录时Position和BestScore为null，仍是成功响应。
type Position struct {
	PlayerName string `json:"player_name"`
	Position   *int64 `json:"position"`
	BestScore  *int   `json:"best_score"`
	Message    string `json:"message"`
}

// bestResultsQuery 为每个玩家挑出最好成绩对应的那一行。
// 同一玩家多局并列最高分时取id最小（最早写入）的一行，保证结果确定。
// 跨玩家的同分按played_at先达成者在前排序。
const bestResultsQuery = `
SELECT * FROM game_results
WHERE id IN (
	SELECT MIN(id) FROM game_results AS best
	WHERE best.score = (
		SELECT MAX(score) FROM game_results WHERE player_name = best.player_name
	)
	GROUP BY best.player_name
)
ORDER BY score DESC, played_at ASC, id ASC
LIMIT ?`

// betterPlayersQuery 统计最好成绩严格高于给定分数的玩家数。
// 与排行榜一致，按玩家去重而不是按局数。
const betterPlayersQuery = `
SELECT COUNT(*) FROM (
	SELECT player_name FROM game_results
	GROUP BY player_name
	HAVING MAX(score) > ?
) AS better`

// GetLeaderboard 构建去重后的排行榜，并附带全站统计。
// 排名是截断后序列中的位置，同分按顺序占据相邻名次。
func GetLeaderboard(limit int) (*Leaderboard, error) {
	// 1. 为每个玩家取出最好成绩对应的完整行
	var bestResults []game.GameResult
	if err := database.DB.Raw(bestResultsQuery, limit).Scan(&bestResults).Error; err != nil {
		return nil, fmt.Errorf("无法查询排行榜: %w", err)
	}

	entries := make([]Entry, 0, len(bestResults))
	for i, result := range bestResults {
		entries = append(entries, Entry{
			Rank:       i + 1,
			PlayerName: result.PlayerName,
			Score:      result.Score,
			Duration:   result.Duration,
			PlayedAt:   result.PlayedAt,
		})
	}

	// 2. 统计总局数和去重后的玩家数，两者都不受limit限制
	var totalGames int64
	if err := database.DB.Model(&game.GameResult{}).Count(&totalGames).Error; err != nil {
		return nil, fmt.Errorf("无法统计总局数: %w", err)
	}
	var totalPlayers int64
	if err := database.DB.Model(&game.GameResult{}).Distinct("player_name").Count(&totalPlayers).Error; err != nil {
		return nil, fmt.Errorf("无法统计玩家数: %w", err)
	}

	return &Leaderboard{
		Entries:      entries,
		TotalGames:   totalGames,
		TotalPlayers: totalPlayers,
	}, nil
}

// GetPlayerPosition 计算一个玩家的最好成绩在所有玩家中的名次。
// 名次 = 最好成绩严格更高的玩家数 + 1。
func GetPlayerPosition(playerName string) (*Position, error) {
	playerName = game.NormalizePlayerName(playerName)

	// 1. 查出玩家自己的最好成绩，NULL表示从未玩过
	var bestScore sql.NullInt64
	err := database.DB.
		Model(&game.GameResult{}).
		Select("MAX(score)").
		Where("player_name = ?", playerName).
		Scan(&bestScore).Error
	if err != nil {
		return nil, fmt.Errorf("无法查询玩家最好成绩: %w", err)
	}

	if !bestScore.Valid {
		return &Position{
			PlayerName: playerName,
			Message:    "该玩家还没有游戏记录",
		}, nil
	}

	// 2. 数一数有多少玩家的最好成绩比他高
	var betterCount int64
	if err := database.DB.Raw(betterPlayersQuery, bestScore.Int64).Scan(&betterCount).Error; err != nil {
		return nil, fmt.Errorf("无法统计更高成绩的玩家数: %w", err)
	}

	position := betterCount + 1
	best := int(bestScore.Int64)
	return &Position{
		PlayerName: playerName,
		Position:   &position,
		BestScore:  &best,
		Message:    fmt.Sprintf("你以 %d 分位列第 %d 名", best, position),
	}, nil
}
