// Package shortenurlhandlers содержит HTTP-хендлеры для операций с короткими URL.
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

const (
	msgShortened     = "URL shortened successfully"
	msgBadBody       = "Invalid request body"
	msgMissingField  = "URL and name are required"
	msgInvalidURL    = "Invalid URL format"
	msgInvalidName   = "Name can only contain letters, numbers and hyphens"
	msgNameTaken     = "This name is already taken"
	msgNotFound      = "Short URL not found"
	msgInternalError = "Internal server error"
)

// ShortenRequest принимается как JSON или как форма.
type ShortenRequest struct {
	URL  string `json:"url" form:"url"`
	Name string `json:"name" form:"name"`
}

// ShortenHandler обрабатывает создание коротких ссылок.
type ShortenHandler struct {
	Service service.URLShortener
	logger  *zap.SugaredLogger
}

// NewShortenHandler создаёт новый ShortenHandler.
func NewShortenHandler(service service.URLShortener, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{Service: service, logger: logger}
}

// URLCreator обрабатывает POST /shorten.
// Принимает url и name, IP клиента берётся из транспорта и передаётся в сервис явно.
// Ошибки ввода и занятое имя возвращаются как 400.
func (h *ShortenHandler) URLCreator(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var req ShortenRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Debugw("Failed to bind shorten request", "error", err)
		metrics.CreateRejected.WithLabelValues("bad_body").Inc()
		respondError(c, http.StatusBadRequest, msgBadBody)
		return
	}

	record, err := h.Service.ShortenURL(c.Request.Context(), req.URL, req.Name, c.ClientIP())
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingField):
		h.reject(c, err, msgMissingField)
		return
	case errors.Is(err, service.ErrInvalidURL):
		h.reject(c, err, msgInvalidURL)
		return
	case errors.Is(err, service.ErrInvalidName):
		h.reject(c, err, msgInvalidName)
		return
	case errors.Is(err, service.ErrNameTaken):
		h.reject(c, err, msgNameTaken)
		return
	default:
		h.logger.Errorw("Failed to create short link", "name", req.Name, "error", err)
		metrics.StoreErrors.Inc()
		respondError(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.logger.Infow("Short link created", "name", record.Name, "targetURL", record.TargetURL)
	metrics.LinksCreated.Inc()
	respondOK(c, http.StatusOK, msgShortened, record)
}

func (h *ShortenHandler) reject(c *gin.Context, err error, message string) {
	h.logger.Debugw("Shorten request rejected", "reason", err)
	metrics.CreateRejected.WithLabelValues(err.Error()).Inc()
	respondError(c, http.StatusBadRequest, message)
}
