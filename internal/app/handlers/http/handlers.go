package http

import (
	"github.com/aseptimu/shortmyurl/internal/app/handlers/http/dbhandlers"
	"github.com/aseptimu/shortmyurl/internal/app/handlers/http/shortenurlhandlers"
	"github.com/aseptimu/shortmyurl/internal/app/metrics"
	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	urlSvc    service.URLShortener
	urlGetSvc service.URLGetter
	pinger    dbhandlers.Pinger
	logger    *zap.SugaredLogger
}

func New(
	urlSvc service.URLShortener,
	urlGetSvc service.URLGetter,
	pinger dbhandlers.Pinger,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		urlSvc:    urlSvc,
		urlGetSvc: urlGetSvc,
		pinger:    pinger,
		logger:    logger,
	}
}

// RegisterRoutes регистрирует маршруты. Статические пути имеют приоритет над /:name,
// поэтому их имена зарезервированы в service.
func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	getter := shortenurlhandlers.NewGetURLHandler(h.urlGetSvc, h.logger)

	r.POST("/shorten", shortenurlhandlers.NewShortenHandler(h.urlSvc, h.logger).URLCreator)
	r.GET("/api/stats/:name", getter.GetStats)
	r.GET("/ping", dbhandlers.NewPingHandler(h.pinger, h.logger).Ping)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/:name", getter.GetURL)
}
