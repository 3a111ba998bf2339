package health

import (
	"net/http"

	"github.com/SlpAus/snake-game-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// Version 是对外暴露的API版本号
const Version = "1.0.0"

// HealthResponse 是健康检查接口的响应结构
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// GetHealth 报告服务和数据库的当前状态。
// 数据库不可用时返回503，便于负载均衡器摘除实例。
func GetHealth(c *gin.Context) {
	if !database.IsDBHealthy() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "degraded",
			Version: Version,
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
