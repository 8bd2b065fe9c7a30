package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareLogger(t *testing.T) {
	core, obs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), MiddlewareLogger(logger))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "hello")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(w, req)

	entries := obs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Request", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/test", fields["uri"])
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.EqualValues(t, 5, fields["size"])
	assert.Equal(t, "abc-123", fields["request_id"])
}

func TestMiddlewareLogger_StatusWithoutBody(t *testing.T) {
	core, obs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MiddlewareLogger(logger))
	router.GET("/missing", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := obs.All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
	assert.EqualValues(t, 0, entries[0].ContextMap()["size"])
}
