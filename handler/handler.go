package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Input is everything a handler gets to work with for a single request.
type Input struct {
	Response http.ResponseWriter
	Request  *http.Request
	Params   httprouter.Params
	Logger   *zap.Logger
}

// A Handler serves a request and returns the status of the response, plus an
// optional error to be logged. If the handler writes nothing, the status is
// written with an empty body.
type Handler interface {
	Handle(i Input) (int, error)
}

type HandlerFunc func(i Input) (int, error)

func (f HandlerFunc) Handle(i Input) (int, error) {
	return f(i)
}
