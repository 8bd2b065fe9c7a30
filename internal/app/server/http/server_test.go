package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handlers "github.com/aseptimu/shortmyurl/internal/app/handlers/http"
	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/aseptimu/shortmyurl/internal/app/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestHandlers(t *testing.T) handlers.Handlers {
	t.Helper()
	s := store.NewStore()
	return handlers.New(
		service.NewURLService(s, "shortmyurl.us.kg"),
		service.NewGetURLService(s),
		s,
		zaptest.NewLogger(t).Sugar(),
	)
}

func TestNewRouter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(zaptest.NewLogger(t).Sugar(), newTestHandlers(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

type panicHandlers struct{}

func (panicHandlers) RegisterRoutes(r *gin.Engine) {
	r.GET("/boom", func(*gin.Context) { panic("boom") })
}

func TestNewRouter_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(zaptest.NewLogger(t).Sugar(), panicHandlers{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Internal server error", resp["message"])
	assert.Equal(t, "danger", resp["alertType"])
	assert.NotContains(t, resp, "data")
}

func TestServer_RunAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	srv := NewServer(addr, time.Second, zaptest.NewLogger(t).Sugar(), newTestHandlers(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
