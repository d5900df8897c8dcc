package middleware

import (
	"errors"
	"net/http"

	"github.com/athlosfit/athlos/internal/auth"
	"github.com/athlosfit/athlos/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type AuthMiddlewareHandler struct {
	scopeChecker *auth.ScopeChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(scopeChecker *auth.ScopeChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		scopeChecker: scopeChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
	}
}

// AuthCheck resolves the session token into a Caller and stores it on
// the request context. Everything except the allow-listed paths
// requires a valid session.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get("X-ATHLOS-TOKEN")
			caller, err := h.scopeChecker.GetCaller(ctx, token)
			if err != nil {
				if !errors.Is(err, auth.ErrNotLoggedIn) {
					log.Errorf("auth middleware, get caller: %s", err)
				}
				span.SetStatus(codes.Error, "unauthorized")
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithCaller(ctx, caller)))
		})
	}
}
