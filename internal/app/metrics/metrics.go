// Package metrics регистрирует счётчики Prometheus сервиса.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LinksCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shortener_links_created_total",
		Help: "Short links created.",
	})
	CreateRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_create_rejected_total",
		Help: "Create requests rejected, by reason.",
	}, []string{"reason"})
	Redirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_redirects_total",
		Help: "Redirect requests, by result.",
	}, []string{"result"})
	StatsRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_stats_requests_total",
		Help: "Stats requests, by result.",
	}, []string{"result"})
	StoreErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shortener_store_errors_total",
		Help: "Requests failed because of the record store.",
	})
)

const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

func init() {
	prometheus.MustRegister(LinksCreated, CreateRejected, Redirects, StatsRequests, StoreErrors)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
