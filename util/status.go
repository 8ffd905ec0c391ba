package util

import (
	"net/http"
)

// Empty writes the status with an empty body. Content sniffing is suppressed
// so no Content-Type is made up for a response that has no content.
func Empty(w http.ResponseWriter, code int) {
	w.Header()["Content-Type"] = nil
	w.WriteHeader(code)
}

// JSON writes the status and a pre-encoded JSON body.
func JSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
