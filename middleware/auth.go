package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogem/customer-logs/authenticator"
	"github.com/blogem/customer-logs/userctx"
)

// RequireBearerToken rejects requests without a valid "Authorization: Bearer" token.
// On success the token subject and email are added to the request context.
func RequireBearerToken(verifier authenticator.Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := verifier.Verify(r.Context(), rawToken)
			if err != nil {
				logger.Warn("token verification failed",
					"request_id", userctx.GetRequestID(r.Context()),
					"error", err,
				)
				unauthorized(w, "invalid bearer token")
				return
			}

			logger.Debug("bearer token accepted",
				"request_id", userctx.GetRequestID(r.Context()),
				"user", claims.Subject(),
			)

			ctx := userctx.SetUserID(r.Context(), claims.Subject())
			if email := claims.Email(); email != "" {
				ctx = userctx.SetUserEmail(ctx, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="customer-logs"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
