package main

import (
	"context"
	"errors"
	"ingress-errors/api"
	"ingress-errors/config"
	"ingress-errors/errpage"
	"ingress-errors/handler"
	"ingress-errors/services"
	"ingress-errors/util"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {

	// load and validate config
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// create zap logger
	logger, err := services.NewLogger(cfg.LogDebug)
	if err != nil {
		// this is the final usage of the default go logger
		log.Fatal(err)
	}
	defer logger.Sync()

	// initialize request id generator
	podIndex, err := util.PodIndex()
	if err != nil {
		logger.With(zap.Error(err)).Fatal("failed to determine pod index")
	}
	ids, err := util.NewSnowflakeGenerator(podIndex)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("failed to create snowflake id generator")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewMetrics(registry)
	templates := services.NewTemplates(cfg)

	responder := errpage.NewResponder(
		templates,
		errpage.WithContentType(cfg.ContentType),
		errpage.WithMetrics(metrics),
	)

	servers := []*http.Server{{
		Addr:              cfg.ListenAddress,
		Handler:           handler.HTTP(responder, logger, ids),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.AdminAddress != "" {
		servers = append(servers, &http.Server{
			Addr:              cfg.AdminAddress,
			Handler:           api.NewAdminRouter(logger, ids, templates, registry, version),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// start the servers
	failed := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info("starting http server",
				zap.String("addr", srv.Addr),
				zap.String("templatesDir", cfg.TemplatesDir),
				zap.Int64("podIndex", podIndex),
				zap.String("version", version),
			)
			err := srv.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				failed <- err
			}
		}(srv)
	}

	select {
	case err := <-failed:
		logger.With(zap.Error(err)).Fatal("failed to serve http")
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.With(zap.Error(err), zap.String("addr", srv.Addr)).Error("failed to shut down http server")
		}
	}
}
