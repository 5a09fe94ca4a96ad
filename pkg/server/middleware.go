package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/getzep/animalfacts/config"
)

const versionHeader = "X-Animalfacts-Version"

// SendVersion stamps every response with the build's version string unless a handler
// already set one.
func SendVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get(versionHeader) == "" {
			w.Header().Set(versionHeader, config.VersionString)
		}
		next.ServeHTTP(w, r)
	})
}

// ApplyCustomHeaders adds server.custom_headers to every response. Values of the form env:NAME
// are read from the environment on each request.
func ApplyCustomHeaders(customHeaders map[string]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for key, value := range customHeaders {
				if w.Header().Get(key) != "" {
					continue
				}
				if name, ok := strings.CutPrefix(value, "env:"); ok {
					value = os.Getenv(name)
				}
				w.Header().Set(key, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
