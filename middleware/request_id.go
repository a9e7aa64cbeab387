package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/blogem/customer-logs/userctx"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or generates a new one and stores it in the request context
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := userctx.SetRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
