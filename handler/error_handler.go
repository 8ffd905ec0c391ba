package handler

// NewErrorHandler returns a handler that always fails with the given status
// and error, leaving the body empty.
func NewErrorHandler(status int, err error) Handler {
	return &errorHandler{status, err}
}

type errorHandler struct {
	status int
	err    error
}

func (h *errorHandler) Handle(i Input) (int, error) {
	return h.status, h.err
}
