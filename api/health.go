package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ingress-errors/handler"
	"ingress-errors/util"
	"io"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// GET /healthz
//
// Checks that the templates directory can still be listed.
func HealthCheck(templates afero.Fs, timeout time.Duration) handler.Handler {
	type responseBody struct {
		Templates bool `json:"templates"`
	}
	return handler.HandlerFunc(func(i handler.Input) (int, error) {

		// context that times out, or ends when the request is cancelled
		ctx, finish := context.WithTimeout(i.Request.Context(), timeout)
		defer finish()

		ctemplates := make(chan error, 1)
		go func() {
			ctemplates <- checkTemplates(templates)
		}()

		var resbody responseBody
		var err error
		select {
		case err = <-ctemplates:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			i.Logger.Error("templates directory is unhealthy", zap.Error(err))
		}
		resbody.Templates = err == nil

		status := http.StatusOK
		if !resbody.Templates {
			status = http.StatusServiceUnavailable
		}
		body, err := json.Marshal(resbody)
		if err != nil {
			return http.StatusInternalServerError, err
		}
		util.JSON(i.Response, status, body)
		return status, nil
	})
}

func checkTemplates(templates afero.Fs) error {
	dir, err := templates.Open(".")
	if err != nil {
		return err
	}
	defer dir.Close()
	info, err := dir.Stat()
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", info.Name())
	}
	_, err = dir.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
