package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole lets the request through when the token carried at least
// one of the given roles. Must run after AuthnMiddleware.
func RequireAnyRole(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				for _, role := range required {
					if claims.HasRole(role) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			w.Header().Set("WWW-Authenticate",
				`Bearer error="insufficient_scope", error_description="requires role `+strings.Join(required, " or ")+`"`)
			Fail(w, http.StatusForbidden, "Forbidden: insufficient role")
		})
	}
}
