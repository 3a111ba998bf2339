package game

import (
	"time"
)

// GameResult 定义了一局游戏结果在数据库中的持久化模型。
// 每完成一局游戏写入一行；行只会被创建或删除，从不更新。
type GameResult struct {
	// ID 是自增主键，一旦分配不再改变。
	ID uint `gorm:"primarykey" json:"id"`

	// PlayerName 是玩家自报的名字，没有唯一性约束。
	// 在接入鉴权之前，同名即视为同一玩家。
	PlayerName string `gorm:"type:varchar(50);not null;default:'Player'" json:"player_name"`

	// Score 是本局得分。
	Score int `gorm:"not null" json:"score"`

	// Duration 是本局时长（秒）。
	Duration float64 `gorm:"not null" json:"duration"`

	// MaxLength 是本局达到的最大蛇长。
	MaxLength int `gorm:"not null;default:1" json:"max_length"`

	// FoodEaten 是本局吃掉的食物数。
	FoodEaten int `gorm:"not null;default:0" json:"food_eaten"`

	// BonusesEaten 是本局吃掉的奖励数。
	BonusesEaten int `gorm:"not null;default:0" json:"bonuses_eaten"`

	// PlayedAt 由数据库在插入时填充，客户端无法指定。
	PlayedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"played_at"`
}

// TableName 指定GORM使用的表名
func (GameResult) TableName() string {
	return "game_results"
}
