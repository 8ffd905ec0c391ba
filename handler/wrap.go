package handler

import (
	"ingress-errors/util"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Wraps a handler to a regular httprouter handle.
// Request logging and response bookkeeping are injected here.
func Wrap(h Handler, logger *zap.Logger, ids *util.SnowflakeGenerator) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {

		// generate an identifier to uniquely identify the request
		id := ids.GenID()

		// create a logger with useful contextuals
		logger := logger.With(
			zap.Int64("request_id", id),
			zap.String("method", r.Method),
			zap.Stringer("url", r.URL),
		)
		logger.Debug("request received")

		// wrap the response writer to later check whether header and status were written
		wrap := responseWriterWrapper{
			writer: w,
			logger: logger,
		}

		status, err := h.Handle(Input{
			Response: &wrap,
			Request:  r,
			Params:   ps,
			Logger:   logger,
		})
		logger.Debug("request processed", zap.Int("status", status))

		// log any returned error, with log level corresponding to status
		if err != nil {
			logger.Check(levelFor(status), "error returned by http handler").Write(
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if wrap.headerWritten {
			if status != wrap.statusWritten {
				logger.Error(
					"status returned from handler does not match written status",
					zap.Int("status", status),
					zap.Int("statusWritten", wrap.statusWritten),
				)
			}
		} else {
			util.Empty(w, status)
		}
	}
}

// HTTP wraps a handler to a plain http.Handler, for use without a router.
func HTTP(h Handler, logger *zap.Logger, ids *util.SnowflakeGenerator) http.Handler {
	handle := Wrap(h, logger, ids)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle(w, r, nil)
	})
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= 400 && status <= 499:
		return zapcore.WarnLevel
	case status >= 500 && status <= 599:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type responseWriterWrapper struct {
	writer        http.ResponseWriter
	headerWritten bool
	statusWritten int
	logger        *zap.Logger
}

func (w *responseWriterWrapper) Header() http.Header {
	return w.writer.Header()
}

func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.statusWritten = http.StatusOK
	}
	w.headerWritten = true
	return w.writer.Write(b)
}

func (w *responseWriterWrapper) WriteHeader(status int) {
	if w.headerWritten {
		w.logger.Error(
			"unable to write http status, it has already been written",
			zap.Int("status", status),
			zap.Int("statusWritten", w.statusWritten),
		)
		return
	}
	w.statusWritten = status
	w.headerWritten = true
	w.writer.WriteHeader(status)
}
