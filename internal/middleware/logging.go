package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// LogRequest trace-logs every incoming request. Report payloads can
// carry personal data, so only method, path and UA are logged.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Tracef(" ====> [%s] %s [UA: %s]", r.Method, r.URL.Path, r.UserAgent())
			next.ServeHTTP(w, r)
		})
	}
}
