package api

import (
	"errors"
	"ingress-errors/handler"
	"ingress-errors/util"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const healthTimeout = 3 * time.Second

var errNoSuchEndpoint = errors.New("no such admin endpoint")

// NewAdminRouter registers the admin routes. They are served apart from the
// error pages, whose listener answers every other path with an empty 404.
func NewAdminRouter(logger *zap.Logger, ids *util.SnowflakeGenerator, templates afero.Fs, gatherer prometheus.Gatherer, version string) *httprouter.Router {
	router := httprouter.New()
	router.GET("/healthz", handler.Wrap(HealthCheck(templates, healthTimeout), logger, ids))
	router.GET("/version", handler.Wrap(Version(version), logger, ids))
	router.GET("/metrics", handler.Wrap(Metrics(gatherer), logger, ids))
	router.NotFound = handler.HTTP(handler.NewErrorHandler(http.StatusNotFound, errNoSuchEndpoint), logger, ids)
	return router
}
