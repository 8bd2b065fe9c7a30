package shortenurlhandlers

import (
	"net/http"

	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	alertSuccess = "success"
	alertDanger  = "danger"
)

// Response задаёт единый формат ответа API. Поле Data заполняется только при успехе.
type Response struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message"`
	AlertType string                   `json:"alertType"`
	Data      *service.ShortLinkRecord `json:"data,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, record service.ShortLinkRecord) {
	c.JSON(status, Response{
		Success:   true,
		Message:   message,
		AlertType: alertSuccess,
		Data:      &record,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success:   false,
		Message:   message,
		AlertType: alertDanger,
	})
}

// Recovery перехватывает панику в обработчике и отвечает 500 в общем формате API.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorw("Panic while handling request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		respondError(c, http.StatusInternalServerError, msgInternalError)
	})
}
