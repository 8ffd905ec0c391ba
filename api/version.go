package api

import (
	"encoding/json"
	"ingress-errors/handler"
	"net/http"
)

// GET /version
//
// Get the version of the running binary.
func Version(version string) handler.Handler {
	var resbody struct {
		Version string `json:"version"`
	}
	resbody.Version = version

	// convert the response to bytes prior to request as it is static
	bytes, err := json.Marshal(resbody)
	if err != nil {
		panic(err)
	}

	return handler.NewStaticHandler(bytes, "application/json", http.StatusOK)
}
