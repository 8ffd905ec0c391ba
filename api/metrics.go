package api

import (
	"ingress-errors/handler"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GET /metrics
//
// Prometheus exposition of the responder metrics.
func Metrics(gatherer prometheus.Gatherer) handler.Handler {
	exposition := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return handler.HandlerFunc(func(i handler.Input) (int, error) {
		exposition.ServeHTTP(i.Response, i.Request)
		return http.StatusOK, nil
	})
}
