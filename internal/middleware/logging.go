package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// LogRequest logs every incoming request on trace level, skipping
// the noisy favicon lookups.
func LogRequest() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "favicon.ico") {
				log.Tracef("%s: %s %s", r.RemoteAddr, r.Method, r.URL.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}
