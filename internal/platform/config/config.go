package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 结构体定义了应用程序的所有配置项
// 它与 config/config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库相关的配置
// 当 DATABASE_URL 存在时使用Postgres，否则回落到本地SQLite文件
type DatabaseConfig struct {
	URL    string       `mapstructure:"url"`
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// SqliteConfig 定义了本地SQLite文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// GameConfig 定义了游戏查询相关的配置
type GameConfig struct {
	// LeaderboardSize 是排行榜的默认条目数（未传limit参数时生效）
	LeaderboardSize int `mapstructure:"leaderboardSize"`
	// HistorySize 是历史记录查询的默认条目数
	HistorySize int `mapstructure:"historySize"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 2. 添加配置文件搜索路径
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 设置默认值，保证没有配置文件时服务也能以默认配置启动
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("database.sqlite.path", "snake.db")
	v.SetDefault("game.leaderboardSize", 10)
	v.SetDefault("game.historySize", 10)

	// 4. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 GAME_LEADERBOARDSIZE=20
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. 读取配置文件（文件缺失不算错误，直接使用默认值）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 部署环境（如Render）通过 DATABASE_URL 注入Postgres连接串
	if url := v.GetString("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}

	return &cfg, nil
}
