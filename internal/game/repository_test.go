package game

import (
	"testing"
	"time"

	"github.com/SlpAus/snake-game-backend/internal/platform/database"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 将全局DB替换为一个独立的内存SQLite实例
func setupTestDB() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	So(err, ShouldBeNil)
	So(db.AutoMigrate(&GameResult{}), ShouldBeNil)
	database.DB = db
}

// seedResult 直接写入一条带指定时间的记录，绕过服务层
func seedResult(name string, score int, playedAt time.Time) GameResult {
	result := GameResult{
		PlayerName: name,
		Score:      score,
		Duration:   60,
		MaxLength:  5,
		PlayedAt:   playedAt,
	}
	So(database.DB.Create(&result).Error, ShouldBeNil)
	return result
}

func TestRecordResult(t *testing.T) {
	Convey("保存游戏结果", t, func() {
		setupTestDB()

		Convey("写入后能拿到数据库分配的ID和时间", func() {
			result := GameResult{
				PlayerName:   "Alice",
				Score:        42,
				Duration:     125.5,
				MaxLength:    10,
				FoodEaten:    15,
				BonusesEaten: 2,
			}
			So(RecordResult(&result), ShouldBeNil)
			So(result.ID, ShouldBeGreaterThan, 0)
			So(result.PlayedAt.IsZero(), ShouldBeFalse)
		})

		Convey("写入的字段能原样读回", func() {
			result := GameResult{
				PlayerName:   "Alice",
				Score:        42,
				Duration:     125.5,
				MaxLength:    10,
				FoodEaten:    15,
				BonusesEaten: 2,
			}
			So(RecordResult(&result), ShouldBeNil)

			history, err := GetHistory("Alice", 10)
			So(err, ShouldBeNil)
			So(history, ShouldHaveLength, 1)
			So(history[0].ID, ShouldEqual, result.ID)
			So(history[0].Score, ShouldEqual, 42)
			So(history[0].Duration, ShouldEqual, 125.5)
			So(history[0].MaxLength, ShouldEqual, 10)
			So(history[0].FoodEaten, ShouldEqual, 15)
			So(history[0].BonusesEaten, ShouldEqual, 2)
		})

		Convey("纯空白的玩家名存储为默认名", func() {
			result := GameResult{PlayerName: "   ", Score: 1, Duration: 10}
			So(RecordResult(&result), ShouldBeNil)
			So(result.PlayerName, ShouldEqual, DefaultPlayerName)

			history, err := GetHistory(DefaultPlayerName, 10)
			So(err, ShouldBeNil)
			So(history, ShouldHaveLength, 1)
		})
	})
}

func TestGetHistory(t *testing.T) {
	Convey("查询历史记录", t, func() {
		setupTestDB()
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		seedResult("Alice", 10, base)
		seedResult("Alice", 30, base.Add(2*time.Hour))
		seedResult("Alice", 20, base.Add(1*time.Hour))
		seedResult("Bob", 99, base)

		Convey("按时间从新到旧排序", func() {
			history, err := GetHistory("Alice", 10)
			So(err, ShouldBeNil)
			So(history, ShouldHaveLength, 3)
			So(history[0].Score, ShouldEqual, 30)
			So(history[1].Score, ShouldEqual, 20)
			So(history[2].Score, ShouldEqual, 10)
		})

		Convey("limit限制返回的条数", func() {
			history, err := GetHistory("Alice", 2)
			So(err, ShouldBeNil)
			So(history, ShouldHaveLength, 2)
			So(history[0].Score, ShouldEqual, 30)
		})

		Convey("只返回指定玩家的记录", func() {
			history, err := GetHistory("Bob", 10)
			So(err, ShouldBeNil)
			So(history, ShouldHaveLength, 1)
			So(history[0].Score, ShouldEqual, 99)
		})
	})
}

func TestGetStats(t *testing.T) {
	Convey("查询玩家统计", t, func() {
		setupTestDB()

		Convey("没有记录的玩家得到全零统计", func() {
			stats, err := GetStats("Nobody")
			So(err, ShouldBeNil)
			So(stats.TotalGames, ShouldEqual, 0)
			So(stats.BestScore, ShouldEqual, 0)
			So(stats.AverageScore, ShouldEqual, 0.0)
			So(stats.TotalTimePlayed, ShouldEqual, 0.0)
			So(stats.TotalFoodEaten, ShouldEqual, 0)
			So(stats.TotalBonusesEaten, ShouldEqual, 0)
			So(stats.LongestSnake, ShouldEqual, 0)
		})

		Convey("聚合值按全部记录计算", func() {
			now := time.Now().UTC()
			r1 := GameResult{PlayerName: "Alice", Score: 10, Duration: 100.04, MaxLength: 5, FoodEaten: 3, BonusesEaten: 1, PlayedAt: now}
			r2 := GameResult{PlayerName: "Alice", Score: 21, Duration: 50.02, MaxLength: 8, FoodEaten: 7, BonusesEaten: 0, PlayedAt: now}
			So(database.DB.Create(&r1).Error, ShouldBeNil)
			So(database.DB.Create(&r2).Error, ShouldBeNil)

			stats, err := GetStats("Alice")
			So(err, ShouldBeNil)
			So(stats.TotalGames, ShouldEqual, 2)
			So(stats.BestScore, ShouldEqual, 21)
			So(stats.AverageScore, ShouldEqual, 15.5) // (10+21)/2 = 15.5
			So(stats.TotalTimePlayed, ShouldAlmostEqual, 150.1, 0.0001)
			So(stats.TotalFoodEaten, ShouldEqual, 10)
			So(stats.TotalBonusesEaten, ShouldEqual, 1)
			So(stats.LongestSnake, ShouldEqual, 8)
		})
	})
}

func TestClearHistory(t *testing.T) {
	Convey("清空玩家历史", t, func() {
		setupTestDB()
		now := time.Now().UTC()
		seedResult("Alice", 10, now)
		seedResult("Alice", 20, now)
		seedResult("Bob", 30, now)

		Convey("只删除目标玩家并返回删除数", func() {
			deleted, err := ClearHistory("Alice")
			So(err, ShouldBeNil)
			So(deleted, ShouldEqual, 2)

			aliceHistory, err := GetHistory("Alice", 10)
			So(err, ShouldBeNil)
			So(aliceHistory, ShouldBeEmpty)

			aliceStats, err := GetStats("Alice")
			So(err, ShouldBeNil)
			So(aliceStats.TotalGames, ShouldEqual, 0)

			bobHistory, err := GetHistory("Bob", 10)
			So(err, ShouldBeNil)
			So(bobHistory, ShouldHaveLength, 1)
		})

		Convey("没有记录时删除数为0", func() {
			deleted, err := ClearHistory("Nobody")
			So(err, ShouldBeNil)
			So(deleted, ShouldEqual, 0)
		})
	})
}
