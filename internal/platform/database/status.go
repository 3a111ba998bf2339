package database

import (
	"fmt"
	"sync"
)

// statusManager 负责线程安全地管理和提供数据库的健康状态。
type statusManager struct {
	mu          sync.RWMutex
	isDBHealthy bool
}

// 全局的状态管理器实例
var globalStatus = &statusManager{
	isDBHealthy: true, // 默认启动时是健康的
}

// IsDBHealthy 返回当前数据库的健康状态。
func IsDBHealthy() bool {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.isDBHealthy
}

// UpdateStatus 用于线程安全地更新健康状态。
func UpdateStatus(isHealthy bool) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()

	// 只有当状态发生变化时才打印日志
	if globalStatus.isDBHealthy != isHealthy {
		globalStatus.isDBHealthy = isHealthy
		if isHealthy {
			fmt.Println("健康检查: 数据库状态已更新为 [可用]")
		} else {
			fmt.Println("健康检查警告: 数据库状态已更新为 [不可用]")
		}
	}
}
