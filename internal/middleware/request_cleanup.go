package middleware

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// DrainAndCloseRequest makes sure request bodies are fully read and
// closed after handling, so connections can be reused.
func DrainAndCloseRequest() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				if _, err := io.Copy(io.Discard, r.Body); err != nil {
					log.Tracef("drain request body: %s", err)
				}
				_ = r.Body.Close()
			}
		})
	}
}
