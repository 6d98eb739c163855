package handler

import (
	"net/http"

	"github.com/mcoot/tennisscore/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NotFound handles requests that match no route
func NotFound(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}

// MethodNotAllowed handles requests to a known path with an unsupported method
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
