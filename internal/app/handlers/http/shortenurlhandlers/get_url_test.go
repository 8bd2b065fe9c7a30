package shortenurlhandlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newGetterRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewGetURLHandler(svc, zap.NewNop().Sugar())
	router.GET("/api/stats/:name", h.GetStats)
	router.GET("/:name", h.GetURL)
	return router
}

func TestGetURL_Redirect(t *testing.T) {
	svc := &mockService{}
	router := newGetterRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/ex1", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	res, _ := doRequest(router, req)

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://example.com", res.Header.Get("Location"))
	assert.Equal(t, "ex1", svc.gotName)
	assert.Equal(t, "198.51.100.7", svc.gotClientIP)
}

func TestGetURL_NotFound(t *testing.T) {
	router := newGetterRouter(&mockService{resolveErr: service.ErrNotFound})

	res, body := doRequest(router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Empty(t, res.Header.Get("Location"))
	assert.JSONEq(t, `{"success":false,"message":"Short URL not found","alertType":"danger"}`, body)
}

func TestGetURL_StoreError(t *testing.T) {
	router := newGetterRouter(&mockService{resolveErr: errors.New("decode store: unexpected EOF")})

	res, body := doRequest(router, httptest.NewRequest(http.MethodGet, "/ex1", nil))

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error","alertType":"danger"}`, body)
}

func TestGetStats(t *testing.T) {
	svc := &mockService{}
	router := newGetterRouter(svc)

	res, body := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/stats/ex1", nil))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ex1", svc.gotName)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Stats retrieved successfully",
		"alertType": "success",
		"data": {
			"name": "ex1",
			"target_url": "https://example.com",
			"short_url": "shortmyurl.us.kg/ex1",
			"created_at": "2024-05-01T12:00:00Z",
			"created_by_ip": "10.0.0.1",
			"visits": 1,
			"visit_history": [{"ip": "10.0.0.2", "timestamp": "2024-05-01T12:01:00Z"}]
		}
	}`, body)
}

func TestGetStats_Errors(t *testing.T) {
	router := newGetterRouter(&mockService{statsErr: service.ErrNotFound})
	res, _ := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/stats/missing", nil))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	router = newGetterRouter(&mockService{statsErr: errors.New("boom")})
	res, body := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/stats/ex1", nil))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.NotContains(t, body, "boom")
}
