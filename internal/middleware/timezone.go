package middleware

import (
	"net/http"
	"time"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
)

// Timezone reads the client's IANA timezone from the X-Timezone header and
// adds it to the context. Unknown or missing zones fall back to UTC so day
// and week boundaries are still deterministic.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get("X-Timezone")
		if name != "" {
			if _, err := time.LoadLocation(name); err != nil {
				name = ""
			}
		}
		ctx := ctxkeys.WithLocation(r.Context(), name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
