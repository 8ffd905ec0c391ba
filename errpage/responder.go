package errpage

import (
	"errors"
	"fmt"
	"ingress-errors/handler"
	"ingress-errors/services"
	"mime"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// The only path error pages are served on.
const Root = "/"

var ErrPathNotRoot = errors.New("request path is not the root")

// Request outcomes, as counted by the metrics.
const (
	OutcomeServed       = "served"
	OutcomeNotFound     = "not_found"
	OutcomePathMismatch = "path_mismatch"
)

// Responder serves the template matching the X-Code and X-Format headers of
// a request, read from a templates filesystem. It holds no mutable state and
// is safe for concurrent use.
type Responder struct {
	templates   afero.Fs
	contentType bool
	metrics     *services.Metrics
}

type Option func(*Responder)

// WithContentType makes the responder set the Content-Type of served
// templates from their extension.
func WithContentType(enable bool) Option {
	return func(r *Responder) {
		r.contentType = enable
	}
}

func WithMetrics(m *services.Metrics) Option {
	return func(r *Responder) {
		r.metrics = m
	}
}

// NewResponder creates a responder serving templates from the root of the
// given filesystem.
func NewResponder(templates afero.Fs, opts ...Option) *Responder {
	r := &Responder{templates: templates}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Responder) Handle(i handler.Input) (int, error) {
	path := i.Request.URL.Path
	if path != Root {
		r.metrics.Request(OutcomePathMismatch)
		return http.StatusNotFound, fmt.Errorf("%w: %q", ErrPathNotRoot, path)
	}

	signal, fallbacks := ParseSignal(i.Request.Header)
	for _, fb := range fallbacks {
		r.metrics.Fallback(fb.Header)
		i.Logger.Warn(
			"unusable header value, using default",
			zap.String("header", fb.Header),
			zap.String("value", fb.Value),
			zap.Error(fb.Err),
		)
	}

	name := signal.Filename()
	start := time.Now()
	content, err := afero.ReadFile(r.templates, name)
	r.metrics.TemplateRead(time.Since(start))
	if err != nil {
		r.metrics.Request(OutcomeNotFound)
		return http.StatusNotFound, fmt.Errorf("failed to read template file %s: %w", name, err)
	}

	header := i.Response.Header()
	header["Content-Type"] = nil
	if r.contentType {
		if ct := mime.TypeByExtension("." + signal.Subtype); ct != "" {
			header.Set("Content-Type", ct)
		}
	}
	i.Response.WriteHeader(http.StatusOK)
	i.Response.Write(content)

	r.metrics.Request(OutcomeServed)
	return http.StatusOK, nil
}
