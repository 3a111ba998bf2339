package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderName 是请求ID使用的HTTP头
	HeaderName = "X-Request-ID"
	// RequestIDKey 是请求ID在Gin上下文中的键名
	RequestIDKey = "requestID"
)

// RequestIDMiddleware 为每个请求分配一个唯一的请求ID。
// 客户端传入的 X-Request-ID 会被原样沿用，否则生成一个新的UUID v7。
// ID会被写回响应头，便于前后端对照排查问题。
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderName)
		if requestID == "" {
			newUUID, err := uuid.NewV7()
			if err == nil {
				requestID = newUUID.String()
			}
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(HeaderName, requestID)
		c.Next()
	}
}
