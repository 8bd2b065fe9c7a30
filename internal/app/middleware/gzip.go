// Package middleware содержит Gin-middleware сервиса: логирование запросов,
// request id и сжатие gzip.
package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipWriter оборачивает gin.ResponseWriter так, чтобы тело ответа сжималось.
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

// GzipMiddleware распаковывает тела запросов с Content-Encoding: gzip
// и сжимает ответ, если клиент прислал Accept-Encoding: gzip.
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success":   false,
					"message":   "Invalid gzip body",
					"alertType": "danger",
				})
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		gzWriter := gzip.NewWriter(c.Writer)
		c.Writer = &gzipWriter{ResponseWriter: c.Writer, writer: gzWriter}
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")
		defer gzWriter.Close()

		c.Next()
	}
}
