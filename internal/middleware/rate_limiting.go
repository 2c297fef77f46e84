package middleware

import (
	"fmt"
	"net/http"

	"github.com/posturelab/posturecheck/pkg"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// LoginRateLimit caps login attempts per client IP per minute.
func LoginRateLimit(limiter *redis_rate.Limiter, allowedPerMin int) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIP, err := pkg.ReadUserIP(r)
			if err != nil {
				log.Errorf("login rate limit, read user IP: %s", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			res, err := limiter.Allow(
				r.Context(),
				fmt.Sprintf("login_limit||%s", userIP),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("login rate limit for %s: %s", userIP, err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if res.Allowed <= 0 {
				log.Warnf("login rate limit reached for %s", userIP)
				http.Error(w, "too many login attempts", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
