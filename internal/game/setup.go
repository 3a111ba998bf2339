package game

import (
	"fmt"

	"github.com/SlpAus/snake-game-backend/internal/platform/config"
	"github.com/SlpAus/snake-game-backend/internal/platform/database"
)

// moduleConfig 保存setup阶段注入的配置，之后只读
var moduleConfig config.GameConfig

// ConfigureModule 在启动时注入game模块需要的配置
func ConfigureModule(cfg config.GameConfig) {
	if cfg.HistorySize < 1 {
		cfg.HistorySize = 10
	}
	// 配置的默认值同样受全局上限约束
	if cfg.HistorySize > MaxListLimit {
		cfg.HistorySize = MaxListLimit
	}
	moduleConfig = cfg
}

// PrimeDB 负责初始化game模块的数据库表结构
func PrimeDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	return nil
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&GameResult{}); err != nil {
		return fmt.Errorf("无法迁移game_results表: %w", err)
	}
	fmt.Println("游戏结果数据库表迁移成功。")
	return nil
}
