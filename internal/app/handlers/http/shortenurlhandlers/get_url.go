package shortenurlhandlers

import (
	"errors"
	"net/http"

	"github.com/aseptimu/shortmyurl/internal/app/metrics"
	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/aseptimu/shortmyurl/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetURLHandler обрабатывает перенаправление на оригинальный URL и выдачу статистики.
type GetURLHandler struct {
	service service.URLGetter
	logger  *zap.SugaredLogger
}

// NewGetURLHandler создаёт новый экземпляр GetURLHandler.
func NewGetURLHandler(service service.URLGetter, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{service: service, logger: logger}
}

// GetURL засчитывает переход и отвечает 302 на целевой URL.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	name := c.Param("name")
	record, err := h.service.Resolve(c.Request.Context(), name, c.ClientIP())
	switch {
	case errors.Is(err, service.ErrNotFound):
		metrics.Redirects.WithLabelValues(metrics.ResultNotFound).Inc()
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	case err != nil:
		h.logger.Errorw("Failed to resolve short link", "name", name, "error", err)
		metrics.Redirects.WithLabelValues(metrics.ResultError).Inc()
		metrics.StoreErrors.Inc()
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	metrics.Redirects.WithLabelValues(metrics.ResultFound).Inc()
	c.Redirect(http.StatusFound, record.TargetURL)
}

// GetStats возвращает запись ссылки вместе с историей переходов.
func (h *GetURLHandler) GetStats(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	name := c.Param("name")
	record, err := h.service.GetStats(c.Request.Context(), name)
	switch {
	case errors.Is(err, service.ErrNotFound):
		metrics.StatsRequests.WithLabelValues(metrics.ResultNotFound).Inc()
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	case err != nil:
		h.logger.Errorw("Failed to get stats", "name", name, "error", err)
		metrics.StatsRequests.WithLabelValues(metrics.ResultError).Inc()
		metrics.StoreErrors.Inc()
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	metrics.StatsRequests.WithLabelValues(metrics.ResultFound).Inc()
	respondOK(c, http.StatusOK, "Stats retrieved successfully", record)
}
