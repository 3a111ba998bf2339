package leaderboard

import (
	"github.com/SlpAus/snake-game-backend/internal/game"
	"github.com/SlpAus/snake-game-backend/internal/platform/config"
)

// moduleConfig 保存setup阶段注入的配置，之后只读
var moduleConfig config.GameConfig

// ConfigureModule 在启动时注入leaderboard模块需要的配置。
// 排行榜没有自己的表，依赖game模块完成迁移。
func ConfigureModule(cfg config.GameConfig) {
	if cfg.LeaderboardSize < 1 {
		cfg.LeaderboardSize = 10
	}
	// 配置的默认值同样受全局上限约束
	if cfg.LeaderboardSize > game.MaxListLimit {
		cfg.LeaderboardSize = game.MaxListLimit
	}
	moduleConfig = cfg
}
