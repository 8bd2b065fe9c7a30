package middleware

import (
	"github.com/aseptimu/shortmyurl/internal/app/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID берёт id запроса из заголовка X-Request-ID или генерирует новый,
// кладёт его в контекст и возвращает клиенту.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
