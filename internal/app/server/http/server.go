// Package http настраивает middleware и маршруты и запускает HTTP-сервер.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	handlers "github.com/aseptimu/shortmyurl/internal/app/handlers/http"
	"github.com/aseptimu/shortmyurl/internal/app/handlers/http/shortenurlhandlers"
	"github.com/aseptimu/shortmyurl/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	srv             *http.Server
	logger          *zap.SugaredLogger
	shutdownTimeout time.Duration
}

// NewRouter собирает gin.Engine со всеми middleware и маршрутами.
func NewRouter(logger *zap.SugaredLogger, h handlers.Handlers) *gin.Engine {
	r := gin.New()
	logger.Debug("Setting up middleware")
	r.Use(
		shortenurlhandlers.Recovery(logger),
		middleware.RequestID(),
		middleware.MiddlewareLogger(logger),
		middleware.GzipMiddleware(),
	)
	h.RegisterRoutes(r)
	return r
}

func NewServer(addr string, shutdownTimeout time.Duration, logger *zap.SugaredLogger, h handlers.Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(logger, h),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run запускает сервер и блокируется до отмены ctx или ошибки ListenAndServe.
// После отмены ctx ждёт завершения активных запросов не дольше shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Infow("Starting HTTP server", "addr", s.srv.Addr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Infow("Shutting down server", "addr", s.srv.Addr)
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancelShutdown()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("Error shutting down server", "error", err)
		}
	}()

	err := s.srv.ListenAndServe()
	cancel()
	wg.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
