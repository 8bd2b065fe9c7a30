package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aseptimu/shortmyurl/internal/app/handlers/http/dbhandlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDB struct {
	err error
}

func (f *fakeDB) Ping(_ context.Context) error {
	return f.err
}

func pingRouter(p dbhandlers.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", dbhandlers.NewPingHandler(p, zap.NewNop().Sugar()).Ping)
	return router
}

func TestPing_StoreFails(t *testing.T) {
	router := pingRouter(&fakeDB{err: errors.New("fail ping")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"success":false,"message":"Store unavailable","alertType":"danger"}`, string(body))
}

func TestPing_OK(t *testing.T) {
	router := pingRouter(&fakeDB{err: nil})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, string(body))
}
