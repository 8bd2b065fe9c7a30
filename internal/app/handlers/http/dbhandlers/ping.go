// Package dbhandlers содержит HTTP-хендлер проверки доступности хранилища.
package dbhandlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger описывает ресурс, доступность которого можно проверить.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler обрабатывает HTTP-запросы /ping.
type PingHandler struct {
	store  Pinger
	logger *zap.SugaredLogger
}

func NewPingHandler(store Pinger, logger *zap.SugaredLogger) *PingHandler {
	return &PingHandler{store: store, logger: logger}
}

// Ping отвечает 200, если хранилище доступно, иначе 500.
// Подробности ошибки пишутся только в лог.
func (h *PingHandler) Ping(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("Store ping failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Store unavailable",
			"alertType": "danger",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
}
