package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// AuthTokenHeader carries the session token on protected requests.
const AuthTokenHeader = "X-PSTR-TOKEN"

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

// AuthCheck guards the given paths behind a valid session token.
func AuthCheck(checker loginChecker, protectedPaths map[string]bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || !protectedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(AuthTokenHeader)
			if token == "" {
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			logged, err := checker.IsLogged(r.Context(), token)
			if err != nil {
				log.Errorf("auth check [%s]: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			if !logged {
				log.Tracef("auth check [%s]: invalid token", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
