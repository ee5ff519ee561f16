package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Principal, error)
}

type provisioner interface {
	Provision(ctx context.Context, p domain.Principal) error
}

// Auth verifies the bearer token, provisions the identity on first sight and
// stores the user ID in the request context. Requests without a token pass
// through anonymously.
func Auth(validator tokenValidator, users provisioner, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			principal, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if err := users.Provision(r.Context(), principal); err != nil {
				switch {
				case errors.Is(err, domain.ErrAlreadyExists):
					http.Error(w, "email is registered to another identity", http.StatusConflict)
				case errors.Is(err, domain.ErrUnauthorized):
					http.Error(w, "unauthorized", http.StatusUnauthorized)
				case errors.Is(err, domain.ErrUnavailable):
					http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				default:
					logger.ErrorContext(r.Context(), "provision identity",
						slog.String("user_id", principal.ID.String()),
						slog.String("error", err.Error()),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
				return
			}
			if t, ok := w.(userTagger); ok {
				t.tagUser(principal.ID)
			}
			ctx := ctxutil.WithUserID(r.Context(), principal.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
