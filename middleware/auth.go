package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"tunes-proxy-go/logcolors"
	"tunes-proxy-go/token"
)

type contextKey string

const identityKey contextKey = "identity"

// Verifier checks a bearer token and returns the identity it encodes.
// *token.Service satisfies this; tests substitute their own.
type Verifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// BearerAuth creates middleware that gates every request behind an
// "Authorization: Bearer <token>" header. A missing or malformed header is
// rejected with 401 before the verifier is ever called; a header that fails
// verification (bad signature or expired) is rejected with 403. On success
// the decoded identity is attached to the request context for downstream
// handlers.
func BearerAuth(verifier Verifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.Warnf("%s Missing bearer token from %s for %s", logcolors.LogAuth, r.RemoteAddr, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"No token provided"}`))
				return
			}

			ident, err := verifier.Verify(raw)
			if err != nil {
				log.Warnf("%s Rejected token from %s for %s: %v", logcolors.LogAuth, r.RemoteAddr, r.URL.Path, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Invalid token"}`))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from an Authorization header value.
// The scheme comparison is case-insensitive; an empty credential counts as
// missing.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}

	return tok, true
}

// IdentityFromContext returns the identity attached by BearerAuth, if any.
func IdentityFromContext(ctx context.Context) (token.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(token.Identity)
	return ident, ok
}
