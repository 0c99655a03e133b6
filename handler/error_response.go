package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that defers to the error handler. Handlers use
// it for failures that are not form outcomes.
func Error(err error) Response {
	return errorResponse{err: err}
}
