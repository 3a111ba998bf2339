package health

import (
	"fmt"
	"time"

	"github.com/SlpAus/snake-game-backend/internal/platform/database"
	"github.com/SlpAus/snake-game-backend/pkg/lifecycle"
)

const checkInterval = 5 * time.Second

// PerformCheck 执行一次数据库健康检查，并更新全局状态。
func PerformCheck() {
	err := database.Ping()
	database.UpdateStatus(err == nil)
}

// StartDBHealthCheck 持续地周期性检查数据库连接是否可用。
// 它应该在一个独立的Goroutine中运行，并通过生命周期句柄接收停机信号。
func StartDBHealthCheck(handle *lifecycle.Handle) {
	defer handle.Close()

	for {
		if err := handle.Sleep(checkInterval); err != nil {
			fmt.Println("健康检查: 收到停机信号，检查器退出。")
			return
		}
		PerformCheck()
	}
}
