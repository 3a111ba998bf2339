package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SlpAus/snake-game-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库实例，供项目其他部分使用
var DB *gorm.DB

// InitDB 初始化数据库连接
// 有 DATABASE_URL 时连接Postgres（线上部署），否则使用本地SQLite文件
func InitDB(cfg config.DatabaseConfig) {
	var err error

	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn, // 在生产环境中可以设为Silent
			Colorful:      true,
		},
	)

	gormConfig := &gorm.Config{Logger: newLogger}

	if cfg.URL != "" {
		// Render给出的连接串可能是 postgres:// 前缀，pgx两种都支持
		dsn := strings.TrimSpace(cfg.URL)
		DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		path := cfg.Sqlite.Path
		if path == "" {
			path = "snake.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), gormConfig)
	}

	if err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}

	fmt.Println("数据库连接成功！")
}

// Ping 检查底层数据库连接是否可用
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("无法获取底层数据库连接: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("数据库Ping失败: %w", err)
	}
	return nil
}
