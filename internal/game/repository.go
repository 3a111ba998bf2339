package game

import (
	"fmt"

	"github.com/SlpAus/snake-game-backend/internal/platform/database"
)

// statsRow 是统计聚合查询的扫描目标。
// COALESCE保证玩家没有记录时所有列都是0而不是NULL。
type statsRow struct {
	TotalGames    int64
	BestScore     int
	AverageScore  float64
	TotalTime     float64
	TotalFood     int64
	TotalBonuses  int64
	LongestLength int
}

// insertAndReload 在数据库中创建一条新记录，并重新读取该行，
// 以获取由数据库分配的ID和played_at。
func insertAndReload(result *GameResult) error {
	if err := database.DB.Create(result).Error; err != nil {
		return fmt.Errorf("无法写入游戏结果: %w", err)
	}
	// played_at 由列默认值填充，需要回读才能返回给调用方
	if err := database.DB.First(result, result.ID).Error; err != nil {
		return fmt.Errorf("无法回读刚写入的游戏结果: %w", err)
	}
	return nil
}

// queryHistory 按时间倒序返回一个玩家最近的若干局游戏。
func queryHistory(playerName string, limit int) ([]GameResult, error) {
	var results []GameResult
	err := database.DB.
		Where("player_name = ?", playerName).
		Order("played_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("无法查询历史记录: %w", err)
	}
	return results, nil
}

// queryStats 用一条聚合查询计算玩家的全部统计数据。
func queryStats(playerName string) (statsRow, error) {
	var row statsRow
	err := database.DB.
		Model(&GameResult{}).
		Select(`COUNT(id) AS total_games,
			COALESCE(MAX(score), 0) AS best_score,
			COALESCE(AVG(score), 0) AS average_score,
			COALESCE(SUM(duration), 0) AS total_time,
			COALESCE(SUM(food_eaten), 0) AS total_food,
			COALESCE(SUM(bonuses_eaten), 0) AS total_bonuses,
			COALESCE(MAX(max_length), 0) AS longest_length`).
		Where("player_name = ?", playerName).
		Scan(&row).Error
	if err != nil {
		return statsRow{}, fmt.Errorf("无法查询玩家统计: %w", err)
	}
	return row, nil
}

// deleteByPlayer 删除一个玩家的全部记录，返回删除的行数。
// 单条DELETE语句，不存在部分删除的中间状态。
func deleteByPlayer(playerName string) (int64, error) {
	tx := database.DB.Where("player_name = ?", playerName).Delete(&GameResult{})
	if tx.Error != nil {
		return 0, fmt.Errorf("无法删除玩家记录: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
