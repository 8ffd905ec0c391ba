package services

import (
	"go.uber.org/zap"
)

// NewLogger creates the process logger. Debug logging switches to the
// human readable development encoder.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
